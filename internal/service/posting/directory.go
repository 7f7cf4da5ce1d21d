package posting

import (
	"context"
	"fmt"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

type currencyRepo interface {
	GetAll(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyDirectory is an in-memory snapshot of the currency master data,
// loaded once at startup. It satisfies validation.CurrencyChecker without
// putting I/O on the validation path; the master data changes rarely enough
// that a restart on change is acceptable.
type CurrencyDirectory struct {
	precisions map[string]int32
}

func LoadCurrencyDirectory(ctx context.Context, currencies currencyRepo) (*CurrencyDirectory, error) {
	all, err := currencies.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("LoadCurrencyDirectory: %w", err)
	}

	precisions := make(map[string]int32, len(all))
	for _, c := range all {
		precisions[c.Code] = c.Precision
	}
	return &CurrencyDirectory{precisions: precisions}, nil
}

// NewStaticCurrencyDirectory builds a directory from a fixed code→precision
// map. Used by tests and by callers without a database.
func NewStaticCurrencyDirectory(precisions map[string]int32) *CurrencyDirectory {
	copied := make(map[string]int32, len(precisions))
	for code, p := range precisions {
		copied[code] = p
	}
	return &CurrencyDirectory{precisions: copied}
}

func (d *CurrencyDirectory) Exists(code string) bool {
	_, ok := d.precisions[code]
	return ok
}

func (d *CurrencyDirectory) Precision(code string) int32 {
	if p, ok := d.precisions[code]; ok {
		return p
	}
	return domain.DefaultCurrencyPrecision
}
