package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/rules"
)

func newValidator(t *testing.T) *TransactionValidator {
	t.Helper()
	registry, err := rules.NewRegistry()
	require.NoError(t, err)
	return NewTransactionValidator(registry, NewImpactValidator(testCurrencies()))
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uuidPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func balancedTRY() []domain.ImpactLine {
	return []domain.ImpactLine{
		line("TRY", "50", "0"),
		line("TRY", "0", "50"),
	}
}

func TestValidate_UnknownTypeShortCircuits(t *testing.T) {
	v := newValidator(t)

	// everything else is wrong too, but without a rule no structural check
	// is meaningful
	verdict := v.Validate(domain.TransactionRequest{TypeCode: "NOT_A_TYPE"})

	require.False(t, verdict.Accepted())
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, CodeUnknownTransactionType, verdict.Errors[0].Code)
	assert.Nil(t, verdict.Normalized)
}

func TestValidate_GoldEntryMissingAccount(t *testing.T) {
	v := newValidator(t)

	verdict := v.Validate(domain.TransactionRequest{
		TypeCode:      string(domain.GoldEntry),
		ReferenceCode: strPtr("REF-1"),
		ProductID:     uuidPtr(),
		Meta:          map[string]string{"gram": "22.5", "ayar": "22"},
		Impacts:       balancedTRY(),
	})

	require.False(t, verdict.Accepted())
	codes := errorCodes(verdict)
	assert.Contains(t, codes, CodeMissingRequiredField)
	assert.Equal(t, "accountId", verdict.Errors[0].Field)
}

func TestValidate_CashPaymentZeroCash(t *testing.T) {
	v := newValidator(t)

	// the impact line itself is fine; zero cash still fails the structural
	// requirement because cash must be strictly positive
	verdict := v.Validate(domain.TransactionRequest{
		TypeCode:   string(domain.CashPayment),
		AccountID:  uuidPtr(),
		CashAmount: decPtr("0"),
		Impacts:    balancedTRY(),
	})

	require.False(t, verdict.Accepted())
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, CodeMissingRequiredField, verdict.Errors[0].Code)
	assert.Equal(t, "cashAmount", verdict.Errors[0].Field)
}

func TestValidate_OffsetAccepted(t *testing.T) {
	v := newValidator(t)

	verdict := v.Validate(domain.TransactionRequest{
		TypeCode:      string(domain.Offset),
		AccountID:     uuidPtr(),
		ReferenceCode: strPtr("MH-2025-01"),
		Meta:          map[string]string{"offsetAmount": "50", "currency": "TL"},
		Impacts:       balancedTRY(),
	})

	require.True(t, verdict.Accepted(), "errors: %v", verdict.Errors)
	require.NotNil(t, verdict.Normalized)
}

func TestValidate_GoldEntryBadGram(t *testing.T) {
	v := newValidator(t)

	verdict := v.Validate(domain.TransactionRequest{
		TypeCode:      string(domain.GoldEntry),
		AccountID:     uuidPtr(),
		ReferenceCode: strPtr("REF-2"),
		ProductID:     uuidPtr(),
		Meta:          map[string]string{"gram": "abc", "ayar": "22"},
		Impacts:       balancedTRY(),
	})

	require.False(t, verdict.Accepted())
	require.Len(t, verdict.Errors, 1)
	assert.Equal(t, CodeInvalidFieldType, verdict.Errors[0].Code)
	assert.Equal(t, "gram", verdict.Errors[0].Field)
}

func TestValidate_StockRequirement(t *testing.T) {
	v := newValidator(t)

	base := domain.TransactionRequest{
		TypeCode:  string(domain.MaterialIn),
		AccountID: uuidPtr(),
		Meta:      map[string]string{"materialName": "granül gümüş"},
		Impacts:   balancedTRY(),
	}

	t.Run("neither product nor quantity", func(t *testing.T) {
		verdict := v.Validate(base)
		require.False(t, verdict.Accepted())
		assert.Equal(t, "stock", verdict.Errors[0].Field)
	})

	t.Run("quantity alone satisfies stock", func(t *testing.T) {
		req := base
		req.Quantity = decPtr("3")
		verdict := v.Validate(req)
		assert.True(t, verdict.Accepted(), "errors: %v", verdict.Errors)
	})

	t.Run("product alone satisfies stock", func(t *testing.T) {
		req := base
		req.ProductID = uuidPtr()
		verdict := v.Validate(req)
		assert.True(t, verdict.Accepted(), "errors: %v", verdict.Errors)
	})
}

func TestValidate_ErrorOrderIsDeterministic(t *testing.T) {
	v := newValidator(t)

	// missing account, missing stock, missing reference, bad meta, unbalanced
	// impacts: structural errors first, then meta, then impacts
	req := domain.TransactionRequest{
		TypeCode: string(domain.GoldEntry),
		Meta:     map[string]string{"gram": "abc"},
		Impacts:  []domain.ImpactLine{line("TRY", "10", "0")},
	}

	first := v.Validate(req)
	second := v.Validate(req)

	require.False(t, first.Accepted())
	require.Equal(t, first.Errors, second.Errors)

	wantFields := []string{"accountId", "stock", "referenceCode", "gram", "ayar", "impacts"}
	require.Len(t, first.Errors, len(wantFields))
	for i, want := range wantFields {
		assert.Equal(t, want, first.Errors[i].Field, "position %d", i)
	}
}

func TestValidate_Normalization(t *testing.T) {
	v := newValidator(t)

	req := domain.TransactionRequest{
		TypeCode:      string(domain.GoldEntry),
		AccountID:     uuidPtr(),
		ReferenceCode: strPtr("  REF-7  "),
		Description:   strPtr("   "),
		ProductID:     uuidPtr(),
		Meta:          map[string]string{"gram": "022.500", "ayar": "22"},
		Impacts:       balancedTRY(),
	}

	verdict := v.Validate(req)
	require.True(t, verdict.Accepted(), "errors: %v", verdict.Errors)

	norm := verdict.Normalized
	assert.Equal(t, "REF-7", *norm.ReferenceCode)
	assert.Nil(t, norm.Description, "blank optional collapses to absent")
	assert.Equal(t, "22.5", norm.Meta["gram"])

	// the submitted request is untouched
	assert.Equal(t, "  REF-7  ", *req.ReferenceCode)
	assert.Equal(t, "022.500", req.Meta["gram"])
}

func errorCodes(v Verdict) []string {
	codes := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		codes[i] = e.Code
	}
	return codes
}
