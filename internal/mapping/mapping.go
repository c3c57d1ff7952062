package mapping

// Mapping is the per-file assignment of source columns to canonical
// fields. Column order is the file's header order; it decides which
// column wins when several target the same field.
type Mapping struct {
	columns []string
	targets map[string]Field
}

// New creates a mapping over the detected columns with every column
// set to ignore.
func New(columns []string) *Mapping {
	m := &Mapping{
		columns: append([]string{}, columns...),
		targets: make(map[string]Field, len(columns)),
	}
	for _, c := range columns {
		m.targets[c] = FieldIgnore
	}
	return m
}

// FromColumns builds a mapping from a client-supplied column→field
// dictionary, preserving the given column order. Unknown field names
// fall back to ignore.
func FromColumns(columns []string, assigned map[string]string) *Mapping {
	m := New(columns)
	for col, raw := range assigned {
		if f, ok := ParseField(raw); ok {
			m.Set(col, f)
		}
	}
	return m
}

// Columns returns the column names in header order.
func (m *Mapping) Columns() []string {
	return append([]string{}, m.columns...)
}

// Get returns the field assigned to a column, or ignore for a column
// the mapping does not know.
func (m *Mapping) Get(column string) Field {
	if f, ok := m.targets[column]; ok {
		return f
	}
	return FieldIgnore
}

// Set assigns a field to one column, leaving every other column
// untouched. Returns false when the column is not part of the file.
func (m *Mapping) Set(column string, field Field) bool {
	if _, ok := m.targets[column]; !ok {
		return false
	}
	m.targets[column] = field
	return true
}

// Seed applies a stored bank preference: columns present in both the
// file and the preference take the stored field, everything else keeps
// its current assignment. Stored entries for columns the file does not
// have are dropped.
func (m *Mapping) Seed(stored map[string]Field) {
	for col, f := range stored {
		if _, ok := m.targets[col]; ok {
			m.targets[col] = f
		}
	}
}

// MissingRequired reports the required fields no column currently maps
// to, in canonical order.
func (m *Mapping) MissingRequired() []Field {
	var missing []Field
	for _, req := range RequiredFields {
		found := false
		for _, col := range m.columns {
			if m.targets[col] == req {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	return missing
}

// Complete reports whether the mapping can drive an import: every
// required field has a source and the file had at least one column.
func (m *Mapping) Complete() bool {
	return len(m.columns) > 0 && len(m.MissingRequired()) == 0
}

// Invert produces the field→source-column view the normalizer consumes.
// The first column (in header order) targeting a field wins; ignore is
// excluded.
func (m *Mapping) Invert() map[Field]string {
	out := make(map[Field]string)
	for _, col := range m.columns {
		f := m.targets[col]
		if f == FieldIgnore {
			continue
		}
		if _, taken := out[f]; !taken {
			out[f] = col
		}
	}
	return out
}

// AsColumns renders the assignment as a plain string dictionary for
// persistence and transport.
func (m *Mapping) AsColumns() map[string]string {
	out := make(map[string]string, len(m.targets))
	for col, f := range m.targets {
		out[col] = f.String()
	}
	return out
}
