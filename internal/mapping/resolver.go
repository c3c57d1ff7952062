package mapping

import (
	"context"

	"github.com/financeflow/backend/pkg/logger"
)

// PreferenceSource yields the saved column mapping for a bank, if one
// exists.
type PreferenceSource interface {
	GetMapping(ctx context.Context, bankName string) (map[string]string, error)
}

// Resolver holds the live mapping for one interactive import session:
// it seeds from a stored bank preference when available and tracks user
// edits until the mapping is complete enough to import.
type Resolver struct {
	bankName    string
	mapping     *Mapping
	preferences PreferenceSource
}

func NewResolver(columns []string, bankName string, preferences PreferenceSource) *Resolver {
	return &Resolver{
		bankName:    bankName,
		mapping:     New(columns),
		preferences: preferences,
	}
}

// SeedFromPreference applies the stored mapping for the session's bank.
// Best-effort: a fetch failure or absent preference leaves the mapping
// unseeded and must never block the interactive flow.
func (r *Resolver) SeedFromPreference(ctx context.Context) {
	if r.preferences == nil || r.bankName == "" {
		return
	}

	stored, err := r.preferences.GetMapping(ctx, r.bankName)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn("mapping preference fetch failed, continuing unseeded",
			"bank_name", r.bankName, "error", err)
		return
	}
	if len(stored) == 0 {
		return
	}

	seed := make(map[string]Field, len(stored))
	for col, raw := range stored {
		if f, ok := ParseField(raw); ok {
			seed[col] = f
		}
	}
	r.mapping.Seed(seed)
}

// Assign sets one column's target field.
func (r *Resolver) Assign(column string, field Field) bool {
	return r.mapping.Set(column, field)
}

// MissingRequired reports which required fields remain unmapped.
func (r *Resolver) MissingRequired() []Field {
	return r.mapping.MissingRequired()
}

// Complete reports whether the session can proceed to the import step.
func (r *Resolver) Complete() bool {
	return r.mapping.Complete()
}

// Mapping exposes the effective mapping for the import call.
func (r *Resolver) Mapping() *Mapping {
	return r.mapping
}
