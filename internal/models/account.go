package models

import (
	"time"
)

type Account struct {
	AccountID   string    `firestore:"accountId" json:"accountId"`
	Name        string    `firestore:"name" json:"name"`
	Institution string    `firestore:"institution" json:"institution,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}
