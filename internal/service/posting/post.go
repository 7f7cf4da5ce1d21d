package posting

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/logging"
	"github.com/korhan-dev/cari-ledger/internal/validation"
)

// ValidationError carries every invariant a rejected request violated, in
// the order the checks ran.
type ValidationError struct {
	Fields []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction validation failed with %d error(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidationFailed }

// PostTransaction validates a submission and, when accepted, persists it
// atomically: the transaction row, its impact lines, and the per-currency
// statement updates of the named account all commit together. A rejected
// request is a hard stop; nothing is written.
func (s *Service) PostTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.Transaction, error) {
	log := logging.FromContext(ctx)

	verdict := s.validator.Validate(req)
	if !verdict.Accepted() {
		return nil, fmt.Errorf("PostTransaction: %w", &ValidationError{Fields: verdict.Errors})
	}
	norm := *verdict.Normalized

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("PostTransaction: begin tx: %w", err)
	}
	defer tx.Rollback()

	if norm.AccountID != nil {
		account, err := s.accounts.GetForUpdate(ctx, tx, *norm.AccountID)
		if err != nil {
			return nil, fmt.Errorf("PostTransaction: %w", err)
		}
		if err := verifyAccountActive(account); err != nil {
			return nil, fmt.Errorf("PostTransaction: %w", err)
		}
	}

	record, err := buildRecord(norm)
	if err != nil {
		return nil, fmt.Errorf("PostTransaction: %w", err)
	}

	if err := s.transactions.Create(ctx, tx, record); err != nil {
		return nil, fmt.Errorf("PostTransaction: %w", err)
	}

	if norm.AccountID != nil {
		if err := s.applyImpacts(ctx, tx, *norm.AccountID, record.Impacts); err != nil {
			return nil, fmt.Errorf("PostTransaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("PostTransaction: commit: %w", err)
	}

	log.Info("transaction posted",
		"transaction_id", record.ID,
		"type_code", record.TypeCode,
		"account_id", norm.AccountID,
		"impact_lines", len(record.Impacts),
	)

	return record, nil
}

func buildRecord(norm domain.TransactionRequest) (*domain.Transaction, error) {
	var meta json.RawMessage
	if len(norm.Meta) > 0 {
		encoded, err := json.Marshal(norm.Meta)
		if err != nil {
			return nil, fmt.Errorf("buildRecord: encode meta: %w", err)
		}
		meta = encoded
	}

	return &domain.Transaction{
		ID:            uuid.New(),
		TypeCode:      domain.TransactionTypeCode(norm.TypeCode),
		AccountID:     norm.AccountID,
		ReferenceCode: norm.ReferenceCode,
		Description:   norm.Description,
		CashAmount:    norm.CashAmount,
		ProductID:     norm.ProductID,
		Quantity:      norm.Quantity,
		Impacts:       norm.Impacts,
		Meta:          meta,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// applyImpacts folds the validated lines into the account's per-currency
// statement, one update per currency group.
func (s *Service) applyImpacts(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, impacts []domain.ImpactLine) error {
	type totals struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	sums := make(map[string]*totals, 2)
	var order []string

	for _, line := range impacts {
		t, ok := sums[line.CurrencyCode]
		if !ok {
			t = &totals{}
			sums[line.CurrencyCode] = t
			order = append(order, line.CurrencyCode)
		}
		t.debit = t.debit.Add(line.Debit)
		t.credit = t.credit.Add(line.Credit)
	}

	for _, code := range order {
		t := sums[code]
		if err := s.accounts.ApplyImpact(ctx, tx, accountID, code, t.debit, t.credit); err != nil {
			return fmt.Errorf("applyImpacts: %s: %w", code, err)
		}
	}
	return nil
}

func verifyAccountActive(account *domain.Account) error {
	switch account.Status {
	case domain.AccountStatusFrozen:
		return domain.ErrAccountFrozen
	case domain.AccountStatusActive:
		return nil
	default:
		return domain.ErrAccountClosed
	}
}
