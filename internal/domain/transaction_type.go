package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is a catalog row carrying display metadata for one code.
// The rules registry is the source of truth for structural rules; this
// catalog is the source of truth for names and descriptions shown in lists.
type TransactionType struct {
	ID          uuid.UUID
	Code        TransactionTypeCode
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
