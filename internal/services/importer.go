package services

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/financeflow/backend/internal/dto"
	"github.com/financeflow/backend/internal/errs"
	"github.com/financeflow/backend/internal/ingest"
	"github.com/financeflow/backend/internal/mapping"
	"github.com/financeflow/backend/internal/models"
	"github.com/financeflow/backend/pkg/logger"
)

const (
	defaultAccountLabel   = "Imported Account"
	defaultStatementLabel = "Imported"
	defaultCategory       = "Uncategorized"

	// Direct mapped imports have exact provenance.
	importConfidence = 100
)

type accountISStore interface {
	FindByName(ctx context.Context, name, institution string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
}

type transactionISStore interface {
	InsertBatch(ctx context.Context, txs []models.Transaction) error
}

type importService struct {
	accounts    accountISStore
	txs         transactionISStore
	preferences mapping.PreferenceSource
}

func NewImportService(accounts accountISStore, txs transactionISStore, preferences mapping.PreferenceSource) *importService {
	return &importService{
		accounts:    accounts,
		txs:         txs,
		preferences: preferences,
	}
}

// ParseStatement reads an uploaded file into columns and rows and
// opens the mapping session: all columns start at ignore, then the
// bank's saved preference is applied best-effort.
func (s *importService) ParseStatement(ctx context.Context, filename string, content io.Reader, bankName string) (dto.ParseStatementResult, error) {
	parsed, err := ingest.Parse(filename, content)
	if err != nil {
		return dto.ParseStatementResult{}, err
	}

	resolver := mapping.NewResolver(parsed.Columns, bankName, s.preferences)
	resolver.SeedFromPreference(ctx)

	return dto.ParseStatementResult{
		Columns:       parsed.Columns,
		Rows:          parsed.Rows,
		Mapping:       resolver.Mapping().AsColumns(),
		MissingFields: fieldNames(resolver.MissingRequired()),
	}, nil
}

// Import normalizes raw rows through the effective mapping and bulk
// writes the surviving transactions. Rows failing date, amount or
// description resolution are dropped, not defaulted; nothing is
// written unless at least one row survives.
func (s *importService) Import(ctx context.Context, req dto.ImportRequest) (dto.ImportResult, error) {
	if len(req.Rows) == 0 || len(req.Mapping) == 0 {
		return dto.ImportResult{}, errs.NewValidationError("rows and mapping are required")
	}

	m := mapping.FromColumns(mappingColumns(req), req.Mapping)
	if missing := m.MissingRequired(); len(missing) > 0 {
		return dto.ImportResult{}, errs.NewValidationError(
			"missing required mappings: " + strings.Join(fieldNames(missing), ", "))
	}
	sources := m.Invert()

	accountLabel := req.AccountName
	if accountLabel == "" {
		accountLabel = req.BankName
	}
	if accountLabel == "" {
		accountLabel = defaultAccountLabel
	}

	statement := req.BankName
	if statement == "" {
		statement = defaultStatementLabel
	}

	// Account lookups are memoized for the duration of this call so N
	// rows naming the same new account create exactly one record.
	accountIDs := make(map[string]string)
	var skipped int
	var txs []models.Transaction

	for _, row := range req.Rows {
		date, ok := parseDate(row[sources[mapping.FieldDate]])
		if !ok {
			skipped++
			continue
		}
		amount, ok := parseAmount(row[sources[mapping.FieldAmount]])
		if !ok {
			skipped++
			continue
		}
		description := strings.TrimSpace(row[sources[mapping.FieldDescription]])
		if description == "" {
			skipped++
			continue
		}

		merchant := optionalCell(row, sources, mapping.FieldMerchant)
		if merchant == "" {
			merchant = description
		}
		category := optionalCell(row, sources, mapping.FieldCategory)
		if category == "" {
			category = defaultCategory
		}

		accountName := optionalCell(row, sources, mapping.FieldAccount)
		if accountName == "" {
			accountName = accountLabel
		}
		accountID, err := s.resolveAccount(ctx, accountIDs, accountName, req.BankName)
		if err != nil {
			return dto.ImportResult{}, err
		}

		txs = append(txs, models.Transaction{
			AccountID:   accountID,
			Date:        date,
			Description: description,
			Merchant:    merchant,
			Amount:      amount,
			Type:        resolveType(optionalCell(row, sources, mapping.FieldType), amount),
			Category:    category,
			Statement:   statement,
			Confidence:  importConfidence,
		})
	}

	if len(txs) == 0 {
		return dto.ImportResult{}, errs.NewValidationError("no valid rows after applying the mapping")
	}

	if err := s.txs.InsertBatch(ctx, txs); err != nil {
		return dto.ImportResult{}, err
	}

	log := logger.FromContext(ctx)
	log.Info("statement imported",
		"bank_name", req.BankName,
		"imported", len(txs),
		"skipped", skipped,
		"accounts", len(accountIDs))

	return dto.ImportResult{Imported: len(txs)}, nil
}

// resolveAccount looks up or creates the account for a resolved name,
// at most once per name per import call.
func (s *importService) resolveAccount(ctx context.Context, cache map[string]string, name, institution string) (string, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	account, err := s.accounts.FindByName(ctx, name, institution)
	if err != nil {
		if _, ok := err.(*errs.NotFoundError); !ok {
			return "", err
		}
		account = &models.Account{Name: name, Institution: institution}
		if err := s.accounts.Create(ctx, account); err != nil {
			return "", err
		}
	}

	cache[name] = account.AccountID
	return account.AccountID, nil
}

// mappingColumns recovers a deterministic column order for inversion:
// the header order when the client sent it, otherwise mapping keys
// sorted lexicographically.
func mappingColumns(req dto.ImportRequest) []string {
	if len(req.Columns) > 0 {
		return req.Columns
	}
	cols := make([]string, 0, len(req.Mapping))
	for col := range req.Mapping {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func optionalCell(row map[string]string, sources map[mapping.Field]string, f mapping.Field) string {
	col, ok := sources[f]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func fieldNames(fields []mapping.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.String())
	}
	return out
}
