package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/models"
)

// Saved import mappings are keyed by bank name: one document per bank.
type mappingStore struct {
	client *firestore.Client
}

func NewMappingStore(client *firestore.Client) *mappingStore {
	return &mappingStore{client: client}
}

func (s *mappingStore) collection() *firestore.CollectionRef {
	return s.client.Collection("import_mappings")
}

// Get returns the saved mapping for a bank, or errs.NotFoundError when
// none has been saved yet.
func (s *mappingStore) Get(ctx context.Context, bankName string) (*models.ImportMapping, error) {
	doc, err := s.collection().Doc(bankName).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("no saved mapping for bank: " + bankName)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get import mapping", err)
	}

	var m models.ImportMapping
	if err := doc.DataTo(&m); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse import mapping data", err)
	}
	return &m, nil
}

// Put upserts the mapping for a bank, replacing any previously saved
// columns wholesale.
func (s *mappingStore) Put(ctx context.Context, m *models.ImportMapping) error {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	_, err := s.collection().Doc(m.BankName).Set(ctx, m)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to save import mapping", err)
	}
	return nil
}
