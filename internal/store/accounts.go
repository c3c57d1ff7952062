package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/models"
)

type accountStore struct {
	client *firestore.Client
}

func NewAccountStore(client *firestore.Client) *accountStore {
	return &accountStore{client: client}
}

func (s *accountStore) collection() *firestore.CollectionRef {
	return s.client.Collection("accounts")
}

// FindByName looks up an account by (name, institution). Returns
// errs.NotFoundError when no account matches.
func (s *accountStore) FindByName(ctx context.Context, name, institution string) (*models.Account, error) {
	query := s.collection().Where("name", "==", name)
	if institution != "" {
		query = query.Where("institution", "==", institution)
	}

	iter := query.Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errs.NewNotFoundError("account not found: " + name)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to query accounts", err)
	}

	var a models.Account
	if err := doc.DataTo(&a); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse account data", err)
	}
	return &a, nil
}

func (s *accountStore) Create(ctx context.Context, account *models.Account) error {
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}
	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := s.collection().Doc(account.AccountID).Create(ctx, account)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create account", err)
	}
	return nil
}
