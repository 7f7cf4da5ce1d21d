package domain

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrValidationFailed       = errors.New("validation failed")
	ErrTransactionTypeExists  = errors.New("transaction type already exists")
	ErrCurrencyExists         = errors.New("currency already exists")
	ErrAccountFrozen          = errors.New("account frozen")
	ErrAccountClosed          = errors.New("account closed")
	ErrInvalidRequest         = errors.New("invalid request")
)
