package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/rules"
)

type memTypeRepo struct {
	rows map[domain.TransactionTypeCode]*domain.TransactionType
}

func newMemTypeRepo() *memTypeRepo {
	return &memTypeRepo{rows: make(map[domain.TransactionTypeCode]*domain.TransactionType)}
}

func (m *memTypeRepo) GetAll(_ context.Context) ([]domain.TransactionType, error) {
	out := make([]domain.TransactionType, 0, len(m.rows))
	for _, row := range m.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (m *memTypeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.TransactionType, error) {
	for _, row := range m.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memTypeRepo) GetByCode(_ context.Context, code domain.TransactionTypeCode) (*domain.TransactionType, error) {
	row, ok := m.rows[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func (m *memTypeRepo) Create(_ context.Context, t *domain.TransactionType) error {
	if _, ok := m.rows[t.Code]; ok {
		return domain.ErrTransactionTypeExists
	}
	m.rows[t.Code] = t
	return nil
}

func (m *memTypeRepo) Update(_ context.Context, id uuid.UUID, name string, description *string) error {
	for _, row := range m.rows {
		if row.ID == id {
			row.Name = name
			row.Description = description
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for code, row := range m.rows {
		if row.ID == id {
			delete(m.rows, code)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newCatalog(t *testing.T) (*Service, *memTypeRepo) {
	t.Helper()
	registry, err := rules.NewRegistry()
	require.NoError(t, err)
	repo := newMemTypeRepo()
	return NewService(repo, registry), repo
}

func TestSeed(t *testing.T) {
	svc, repo := newCatalog(t)
	ctx := context.Background()

	// a pre-existing row keeps its name
	custom := &domain.TransactionType{ID: uuid.New(), Code: domain.Offset, Name: "Mahsup İşlemi"}
	require.NoError(t, repo.Create(ctx, custom))

	require.NoError(t, svc.Seed(ctx, rules.TypeLabels))

	assert.Len(t, repo.rows, len(domain.TransactionTypeCodes()))
	assert.Equal(t, "Mahsup İşlemi", repo.rows[domain.Offset].Name)
	assert.Equal(t, "Altın Girişi", repo.rows[domain.GoldEntry].Name)

	// seeding again is a no-op
	require.NoError(t, svc.Seed(ctx, rules.TypeLabels))
	assert.Len(t, repo.rows, len(domain.TransactionTypeCodes()))
}

func TestCreate(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	t.Run("enumerated code", func(t *testing.T) {
		row, err := svc.Create(ctx, "GOLD_ENTRY", "Altın Girişi", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.GoldEntry, row.Code)
	})

	t.Run("code outside the enumeration", func(t *testing.T) {
		_, err := svc.Create(ctx, "BITCOIN_ENTRY", "Kripto", nil)
		require.ErrorIs(t, err, domain.ErrUnknownTransactionType)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := svc.Create(ctx, "OFFSET", "", nil)
		require.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("duplicate code", func(t *testing.T) {
		_, err := svc.Create(ctx, "GOLD_ENTRY", "Tekrar", nil)
		require.ErrorIs(t, err, domain.ErrTransactionTypeExists)
	})
}

func TestGetByCode(t *testing.T) {
	svc, _ := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, rules.TypeLabels))

	row, err := svc.GetByCode(ctx, "CASH_PAYMENT")
	require.NoError(t, err)
	assert.Equal(t, domain.CashPayment, row.Code)

	_, err = svc.GetByCode(ctx, "NOT_A_TYPE")
	require.ErrorIs(t, err, domain.ErrUnknownTransactionType)
}

func TestRuleForCode(t *testing.T) {
	svc, _ := newCatalog(t)

	rule, err := svc.RuleForCode("CASH_COLLECTION")
	require.NoError(t, err)
	assert.True(t, rule.RequiresAccount)
	assert.True(t, rule.RequiresCash)

	_, err = svc.RuleForCode("NOT_A_TYPE")
	require.ErrorIs(t, err, domain.ErrUnknownTransactionType)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, repo := newCatalog(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, "SCRAP_IN", "Hurda Giriş", nil)
	require.NoError(t, err)

	desc := "hurda altın alımı"
	updated, err := svc.Update(ctx, row.ID, "Hurda Girişi", &desc)
	require.NoError(t, err)
	assert.Equal(t, "Hurda Girişi", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)

	_, err = svc.Update(ctx, row.ID, "", nil)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)

	require.NoError(t, svc.Delete(ctx, row.ID))
	assert.Empty(t, repo.rows)

	require.ErrorIs(t, svc.Delete(ctx, row.ID), domain.ErrNotFound)
}
