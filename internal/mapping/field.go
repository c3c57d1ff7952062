package mapping

// Field is a canonical transaction attribute a source column can be
// mapped to. FieldIgnore means the column contributes nothing.
type Field string

const (
	FieldDate        Field = "date"
	FieldAmount      Field = "amount"
	FieldDescription Field = "description"
	FieldMerchant    Field = "merchant"
	FieldCategory    Field = "category"
	FieldAccount     Field = "account"
	FieldType        Field = "type"
	FieldIgnore      Field = "ignore"
)

// RequiredFields are the fields an import cannot proceed without, in the
// order they are reported when missing.
var RequiredFields = []Field{FieldDate, FieldAmount, FieldDescription}

// ParseField resolves a stored or client-supplied field name. Unknown
// values are rejected rather than silently treated as ignore.
func ParseField(s string) (Field, bool) {
	switch Field(s) {
	case FieldDate, FieldAmount, FieldDescription, FieldMerchant,
		FieldCategory, FieldAccount, FieldType, FieldIgnore:
		return Field(s), true
	}
	return FieldIgnore, false
}

func (f Field) String() string { return string(f) }
