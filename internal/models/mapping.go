package models

import (
	"time"
)

// ImportMapping is a saved column mapping for one bank, keyed by bank name.
// Columns maps raw column names to canonical field names.
type ImportMapping struct {
	BankName  string            `firestore:"bankName" json:"bankName"`
	Columns   map[string]string `firestore:"columns" json:"mapping"`
	CreatedAt time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `firestore:"updatedAt" json:"updatedAt"`
}
