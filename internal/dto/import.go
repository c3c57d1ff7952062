package dto

// ParsedFile is the normalized tabular result of reading an uploaded
// statement: header order is preserved in Columns, file order in Rows.
type ParsedFile struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// ParseStatementResult is what the interactive mapping step works
// from: the parsed table plus the session's initial mapping, seeded
// from the bank's saved preference when one exists.
type ParseStatementResult struct {
	Columns       []string            `json:"columns"`
	Rows          []map[string]string `json:"rows"`
	Mapping       map[string]string   `json:"mapping"`
	MissingFields []string            `json:"missingFields"`
}

type ImportRequest struct {
	BankName    string              `json:"bankName,omitempty"`
	AccountName string              `json:"accountName,omitempty"`
	// Columns carries the file's header order; it decides which column
	// wins when several map to the same field. Optional: when omitted,
	// mapping keys are taken in sorted order.
	Columns []string            `json:"columns,omitempty"`
	Rows    []map[string]string `json:"rows"`
	Mapping map[string]string   `json:"mapping"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}
