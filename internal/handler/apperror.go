package handler

import "net/http"

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string { return e.Message }

var (
	ErrInvalidRequest   = &AppError{http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body"}
	ErrValidationFailed = &AppError{http.StatusUnprocessableEntity, "VALIDATION_FAILED", "Transaction validation failed"}
	ErrResourceNotFound = &AppError{http.StatusNotFound, "RESOURCE_NOT_FOUND", "Resource not found"}
	ErrInternalError    = &AppError{http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred"}

	ErrUnknownTransactionType = &AppError{http.StatusUnprocessableEntity, "UNKNOWN_TRANSACTION_TYPE", "Unknown transaction type"}
	ErrTransactionTypeExists  = &AppError{http.StatusConflict, "TRANSACTION_TYPE_EXISTS", "Transaction type already exists"}
	ErrCurrencyExists         = &AppError{http.StatusConflict, "CURRENCY_EXISTS", "Currency already exists"}
	ErrAccountFrozen          = &AppError{http.StatusUnprocessableEntity, "ACCOUNT_FROZEN", "Account is frozen"}
	ErrAccountClosed          = &AppError{http.StatusUnprocessableEntity, "ACCOUNT_CLOSED", "Account is closed"}
)
