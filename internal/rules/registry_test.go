package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

func TestNewRegistry_ExhaustiveOverEnumeration(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	codes := domain.TransactionTypeCodes()
	require.Len(t, codes, 16)

	for _, code := range codes {
		rule, err := registry.Lookup(string(code))
		require.NoError(t, err, "no rule for %s", code)
		assert.NotNil(t, rule)
	}

	// every table entry maps back to an enumerated code
	assert.Len(t, ruleTable, len(codes))
}

func TestLookup_UnknownCode(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	tests := []string{"", "GOLD", "gold_entry", "SALARY_PAYMENT"}
	for _, code := range tests {
		_, err := registry.Lookup(code)
		require.ErrorIs(t, err, domain.ErrUnknownTransactionType, "code %q", code)
	}
}

func TestRuleTable_Contents(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	goldEntry, err := registry.Lookup(string(domain.GoldEntry))
	require.NoError(t, err)
	assert.True(t, goldEntry.RequiresAccount)
	assert.True(t, goldEntry.RequiresStock)
	assert.False(t, goldEntry.RequiresCash)
	assert.True(t, goldEntry.RequiresReferenceCode)

	var gram *domain.MetaFieldSpec
	for i := range goldEntry.MetaSchema {
		if goldEntry.MetaSchema[i].Name == "gram" {
			gram = &goldEntry.MetaSchema[i]
		}
	}
	require.NotNil(t, gram, "GOLD_ENTRY schema must declare gram")
	assert.Equal(t, domain.FieldTypeNumber, gram.Type)
	assert.True(t, gram.Required)

	offset, err := registry.Lookup(string(domain.Offset))
	require.NoError(t, err)
	assert.True(t, offset.RequiresAccount)
	assert.False(t, offset.RequiresStock)
	assert.True(t, offset.RequiresReferenceCode)

	cashPayment, err := registry.Lookup(string(domain.CashPayment))
	require.NoError(t, err)
	assert.True(t, cashPayment.RequiresCash)
}

func TestRuleTable_SelectFieldsHaveOptions(t *testing.T) {
	for code, rule := range ruleTable {
		for _, field := range rule.MetaSchema {
			if field.Type == domain.FieldTypeSelect {
				assert.NotEmpty(t, field.Options, "%s.%s", code, field.Name)
			} else {
				assert.Empty(t, field.Options, "%s.%s", code, field.Name)
			}
		}
	}
}

func TestCheckMetaSchema(t *testing.T) {
	tests := []struct {
		name    string
		schema  []domain.MetaFieldSpec
		wantErr bool
	}{
		{
			name: "valid schema",
			schema: []domain.MetaFieldSpec{
				{Name: "gram", Type: domain.FieldTypeNumber},
				{Name: "unit", Type: domain.FieldTypeSelect, Options: []string{"g", "kg"}},
			},
		},
		{
			name:    "duplicate field name",
			schema:  []domain.MetaFieldSpec{{Name: "a", Type: domain.FieldTypeText}, {Name: "a", Type: domain.FieldTypeText}},
			wantErr: true,
		},
		{
			name:    "empty field name",
			schema:  []domain.MetaFieldSpec{{Name: "", Type: domain.FieldTypeText}},
			wantErr: true,
		},
		{
			name:    "select without options",
			schema:  []domain.MetaFieldSpec{{Name: "currency", Type: domain.FieldTypeSelect}},
			wantErr: true,
		},
		{
			name:    "select with duplicate options",
			schema:  []domain.MetaFieldSpec{{Name: "currency", Type: domain.FieldTypeSelect, Options: []string{"TL", "TL"}}},
			wantErr: true,
		},
		{
			name:    "unknown field type",
			schema:  []domain.MetaFieldSpec{{Name: "x", Type: domain.FieldType("checkbox")}},
			wantErr: true,
		},
		{
			name:    "options on non-select field",
			schema:  []domain.MetaFieldSpec{{Name: "x", Type: domain.FieldTypeText, Options: []string{"a"}}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkMetaSchema(tc.schema)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
