package services

import (
	"context"

	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/mapping"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/pkg/logger"
)

type mappingMSStore interface {
	Get(ctx context.Context, bankName string) (*models.ImportMapping, error)
	Put(ctx context.Context, m *models.ImportMapping) error
}

type mappingService struct {
	store mappingMSStore
}

func NewMappingService(store mappingMSStore) *mappingService {
	return &mappingService{store: store}
}

// Get returns the saved mapping for a bank, or nil when none exists.
func (s *mappingService) Get(ctx context.Context, bankName string) (*models.ImportMapping, error) {
	if bankName == "" {
		return nil, errs.NewValidationError("bankName is required")
	}

	m, err := s.store.Get(ctx, bankName)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); ok {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Save upserts the column mapping for a bank. Saving twice for the same
// bank leaves only the second mapping retrievable.
func (s *mappingService) Save(ctx context.Context, bankName string, columns map[string]string) (*models.ImportMapping, error) {
	if bankName == "" || len(columns) == 0 {
		return nil, errs.NewValidationError("bankName and mapping are required")
	}
	for col, target := range columns {
		if _, ok := mapping.ParseField(target); !ok {
			return nil, errs.NewValidationError("unknown mapping target for column " + col + ": " + target)
		}
	}

	m := &models.ImportMapping{
		BankName: bankName,
		Columns:  columns,
	}
	if err := s.store.Put(ctx, m); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("import mapping saved", "bank_name", bankName, "columns", len(columns))
	return m, nil
}

// GetMapping satisfies mapping.PreferenceSource for seeding a new
// import session. Absent preferences resolve to nil, not an error.
func (s *mappingService) GetMapping(ctx context.Context, bankName string) (map[string]string, error) {
	m, err := s.Get(ctx, bankName)
	if err != nil || m == nil {
		return nil, err
	}
	return m.Columns, nil
}
