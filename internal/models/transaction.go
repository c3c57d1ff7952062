package models

import (
	"time"
)

type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	AccountID     string    `firestore:"accountId" json:"accountId"`
	Date          time.Time `firestore:"date" json:"date"`
	Description   string    `firestore:"description" json:"description"`
	Merchant      string    `firestore:"merchant" json:"merchant"`
	Amount        float64   `firestore:"amount" json:"amount"` // negative = outflow, positive = inflow
	Type          string    `firestore:"type" json:"type"`     // "debit" or "credit"
	Category      string    `firestore:"category" json:"category"`
	Statement     string    `firestore:"statement" json:"statement"` // source statement label, e.g. the bank name
	Confidence    int       `firestore:"confidence" json:"confidence"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
