package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusFrozen AccountStatus = "frozen"
	AccountStatusClosed AccountStatus = "closed"
)

// Account is a cari (current account) counterpart: a customer, supplier or
// workshop the entity trades gold, material and cash with.
type Account struct {
	ID        uuid.UUID
	Name      string
	Phone     *string
	Status    AccountStatus
	CreatedAt time.Time
}

// AccountBalance is the running per-currency statement line of an account:
// gross debit and credit turnover plus the net balance (borç − alacak).
// Positive balance means the counterpart owes the entity.
type AccountBalance struct {
	AccountID    uuid.UUID
	CurrencyCode string
	DebitTotal   decimal.Decimal
	CreditTotal  decimal.Decimal
	Balance      decimal.Decimal
	UpdatedAt    time.Time
}
