package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/logging"
)

type postingService interface {
	PostTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListAccountTransactions(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int, error)
}

type TransactionHandler struct {
	posting postingService
}

func NewTransactionHandler(posting postingService) *TransactionHandler {
	return &TransactionHandler{posting: posting}
}

type impactLineDTO struct {
	CurrencyID string          `json:"currency_id"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
}

type createTransactionRequest struct {
	TransactionTypeCode string               `json:"transaction_type_code"`
	AccountID           *uuid.UUID           `json:"account_id"`
	ReferenceCode       *string              `json:"reference_code"`
	Description         *string              `json:"description"`
	CashAmount          *decimal.Decimal     `json:"cash_amount"`
	ProductID           *uuid.UUID           `json:"product_id"`
	Quantity            *decimal.Decimal     `json:"quantity"`
	Impacts             []impactLineDTO      `json:"impacts"`
	Meta                map[string]string    `json:"meta"`
}

func (r createTransactionRequest) toDomain() domain.TransactionRequest {
	impacts := make([]domain.ImpactLine, len(r.Impacts))
	for i, line := range r.Impacts {
		impacts[i] = domain.ImpactLine{
			CurrencyCode: line.CurrencyID,
			Debit:        line.Debit,
			Credit:       line.Credit,
		}
	}
	return domain.TransactionRequest{
		TypeCode:      r.TransactionTypeCode,
		AccountID:     r.AccountID,
		ReferenceCode: r.ReferenceCode,
		Description:   r.Description,
		CashAmount:    r.CashAmount,
		ProductID:     r.ProductID,
		Quantity:      r.Quantity,
		Impacts:       impacts,
		Meta:          r.Meta,
	}
}

type transactionDTO struct {
	ID            uuid.UUID         `json:"id"`
	TypeCode      string            `json:"transaction_type_code"`
	AccountID     *uuid.UUID        `json:"account_id,omitempty"`
	ReferenceCode *string           `json:"reference_code,omitempty"`
	Description   *string           `json:"description,omitempty"`
	CashAmount    *decimal.Decimal  `json:"cash_amount,omitempty"`
	ProductID     *uuid.UUID        `json:"product_id,omitempty"`
	Quantity      *decimal.Decimal  `json:"quantity,omitempty"`
	Impacts       []impactLineDTO   `json:"impacts"`
	Meta          json.RawMessage   `json:"meta,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

func toTransactionDTO(t *domain.Transaction) transactionDTO {
	impacts := make([]impactLineDTO, len(t.Impacts))
	for i, line := range t.Impacts {
		impacts[i] = impactLineDTO{
			CurrencyID: line.CurrencyCode,
			Debit:      line.Debit,
			Credit:     line.Credit,
		}
	}
	return transactionDTO{
		ID:            t.ID,
		TypeCode:      string(t.TypeCode),
		AccountID:     t.AccountID,
		ReferenceCode: t.ReferenceCode,
		Description:   t.Description,
		CashAmount:    t.CashAmount,
		ProductID:     t.ProductID,
		Quantity:      t.Quantity,
		Impacts:       impacts,
		Meta:          t.Meta,
		CreatedAt:     t.CreatedAt,
	}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	t, err := h.posting.PostTransaction(r.Context(), req.toDomain())
	if err != nil {
		log.Warn("transaction rejected", "type_code", req.TransactionTypeCode, "error", err)
		RespondDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/transactions/%s", t.ID))
	RespondSuccess(w, http.StatusCreated, toTransactionDTO(t))
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	t, err := h.posting.GetTransaction(r.Context(), id)
	if err != nil {
		logging.FromContext(r.Context()).Warn("transaction lookup failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toTransactionDTO(t))
}

func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	limit := queryInt(r, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	transactions, total, err := h.posting.ListAccountTransactions(r.Context(), accountID, limit, offset)
	if err != nil {
		logging.FromContext(r.Context()).Warn("transaction list failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	items := make([]transactionDTO, len(transactions))
	for i := range transactions {
		items[i] = toTransactionDTO(&transactions[i])
	}

	RespondSuccess(w, http.StatusOK, map[string]any{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
