package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/logging"
)

type balanceService interface {
	AccountBalance(ctx context.Context, accountID uuid.UUID, currencyCode string) (decimal.Decimal, error)
	AccountBalances(ctx context.Context, accountID uuid.UUID) ([]domain.AccountBalance, error)
}

type AccountHandler struct {
	balances balanceService
}

func NewAccountHandler(balances balanceService) *AccountHandler {
	return &AccountHandler{balances: balances}
}

type accountBalanceDTO struct {
	AccountID   uuid.UUID       `json:"account_id"`
	CurrencyID  string          `json:"currency_id"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	Balance     decimal.Decimal `json:"balance"`
}

// Balance serves either one currency's balance (?currency=TRY) or the full
// per-currency statement when no currency is given.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	accountID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	if currency := r.URL.Query().Get("currency"); currency != "" {
		balance, err := h.balances.AccountBalance(r.Context(), accountID, currency)
		if err != nil {
			logging.FromContext(r.Context()).Warn("balance lookup failed", "error", err)
			RespondDomainError(w, err)
			return
		}
		RespondSuccess(w, http.StatusOK, map[string]any{
			"account_id":  accountID,
			"currency_id": currency,
			"balance":     balance,
		})
		return
	}

	balances, err := h.balances.AccountBalances(r.Context(), accountID)
	if err != nil {
		logging.FromContext(r.Context()).Warn("balance list failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	items := make([]accountBalanceDTO, len(balances))
	for i, b := range balances {
		items[i] = accountBalanceDTO{
			AccountID:   b.AccountID,
			CurrencyID:  b.CurrencyCode,
			DebitTotal:  b.DebitTotal,
			CreditTotal: b.CreditTotal,
			Balance:     b.Balance,
		}
	}
	RespondSuccess(w, http.StatusOK, items)
}
