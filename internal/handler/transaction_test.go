package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/service/posting"
	"github.com/korhan-dev/cari-ledger/internal/validation"
)

type mockPosting struct {
	posted  *domain.TransactionRequest
	result  *domain.Transaction
	err     error
	listErr error
}

func (m *mockPosting) PostTransaction(_ context.Context, req domain.TransactionRequest) (*domain.Transaction, error) {
	m.posted = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockPosting) GetTransaction(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	if m.result != nil && m.result.ID == id {
		return m.result, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockPosting) ListAccountTransactions(_ context.Context, _ uuid.UUID, limit, offset int) ([]domain.Transaction, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return nil, 0, nil
}

func sampleTransaction() *domain.Transaction {
	accountID := uuid.New()
	return &domain.Transaction{
		ID:        uuid.New(),
		TypeCode:  domain.Offset,
		AccountID: &accountID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateTransaction(t *testing.T) {
	validBody := `{
		"transaction_type_code": "OFFSET",
		"account_id": "` + uuid.NewString() + `",
		"reference_code": "MH-1",
		"impacts": [
			{"currency_id": "TRY", "debit": "50", "credit": "0"},
			{"currency_id": "TRY", "debit": "0", "credit": "50"}
		]
	}`

	tests := []struct {
		name       string
		body       string
		postErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "accepted transaction",
			body:       validBody,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed JSON",
			body:       "not-json",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST",
		},
		{
			name:    "rejected with field errors",
			body:    validBody,
			postErr: fmt.Errorf("PostTransaction: %w", &posting.ValidationError{Fields: []validation.FieldError{
				{Code: validation.CodeMissingRequiredField, Field: "accountId", Message: "required"},
			}}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "frozen account",
			body:       validBody,
			postErr:    fmt.Errorf("PostTransaction: %w", domain.ErrAccountFrozen),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "ACCOUNT_FROZEN",
		},
		{
			name:       "storage failure",
			body:       validBody,
			postErr:    fmt.Errorf("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockPosting{result: sampleTransaction(), err: tc.postErr}
			h := NewTransactionHandler(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			h.Create(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)

			var resp APIResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tc.wantCode == "" {
				assert.True(t, resp.Success)
				assert.NotEmpty(t, rr.Header().Get("Location"))
			} else {
				assert.False(t, resp.Success)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tc.wantCode, resp.Error.Code)
			}
		})
	}
}

// Rejections carry every violated field so the form can highlight them all
// in one round trip.
func TestCreateTransaction_ValidationDetails(t *testing.T) {
	svc := &mockPosting{err: fmt.Errorf("PostTransaction: %w", &posting.ValidationError{Fields: []validation.FieldError{
		{Code: validation.CodeMissingRequiredField, Field: "accountId", Message: "required"},
		{Code: validation.CodeUnbalancedCurrencyImpact, Field: "impacts", Message: "TRY debits (50.00) do not equal credits (0.00)"},
	}})}
	h := NewTransactionHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(`{"transaction_type_code":"GOLD_ENTRY"}`))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Error struct {
			Code    string                  `json:"code"`
			Details []validation.FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Error.Details, 2)
	assert.Equal(t, validation.CodeMissingRequiredField, resp.Error.Details[0].Code)
	assert.Equal(t, "accountId", resp.Error.Details[0].Field)
	assert.Equal(t, validation.CodeUnbalancedCurrencyImpact, resp.Error.Details[1].Code)
}

func TestCreateTransaction_ForwardsRequest(t *testing.T) {
	svc := &mockPosting{result: sampleTransaction()}
	h := NewTransactionHandler(svc)

	body := `{
		"transaction_type_code": "CASH_PAYMENT",
		"account_id": "` + uuid.NewString() + `",
		"cash_amount": "150.75",
		"meta": {"currency": "TL"},
		"impacts": [{"currency_id": "TRY", "debit": "150.75", "credit": "0"}, {"currency_id": "TRY", "debit": "0", "credit": "150.75"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.posted)
	assert.Equal(t, "CASH_PAYMENT", svc.posted.TypeCode)
	require.NotNil(t, svc.posted.CashAmount)
	assert.Equal(t, "150.75", svc.posted.CashAmount.String())
	require.Len(t, svc.posted.Impacts, 2)
	assert.Equal(t, "TRY", svc.posted.Impacts[0].CurrencyCode)
	assert.Equal(t, map[string]string{"currency": "TL"}, svc.posted.Meta)
}

func TestGetTransaction_NotFound(t *testing.T) {
	h := NewTransactionHandler(&mockPosting{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/"+uuid.NewString(), nil)
	req.SetPathValue("id", uuid.NewString())
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
