package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/service/posting"
	"github.com/korhan-dev/cari-ledger/internal/validation"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Error   *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func RespondSuccess(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Error:   nil,
	})
}

func RespondAppError(w http.ResponseWriter, appErr *AppError, details any) {
	RespondJSON(w, appErr.Status, APIResponse{
		Success: false,
		Data:    nil,
		Error: &APIError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		},
	})
}

// RespondValidationError surfaces every violated invariant in one response
// so the form can highlight all offending fields in a single round trip.
func RespondValidationError(w http.ResponseWriter, fields []validation.FieldError) {
	RespondAppError(w, ErrValidationFailed, fields)
}

func RespondDomainError(w http.ResponseWriter, err error) {
	var validationErr *posting.ValidationError
	if errors.As(err, &validationErr) {
		RespondValidationError(w, validationErr.Fields)
		return
	}

	var appErr *AppError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		appErr = ErrResourceNotFound
	case errors.Is(err, domain.ErrUnknownTransactionType):
		appErr = ErrUnknownTransactionType
	case errors.Is(err, domain.ErrTransactionTypeExists):
		appErr = ErrTransactionTypeExists
	case errors.Is(err, domain.ErrCurrencyExists):
		appErr = ErrCurrencyExists
	case errors.Is(err, domain.ErrAccountFrozen):
		appErr = ErrAccountFrozen
	case errors.Is(err, domain.ErrAccountClosed):
		appErr = ErrAccountClosed
	case errors.Is(err, domain.ErrInvalidRequest):
		appErr = ErrInvalidRequest
	default:
		slog.Error("unhandled domain error", "error", err)
		appErr = ErrInternalError
	}

	RespondAppError(w, appErr, nil)
}
