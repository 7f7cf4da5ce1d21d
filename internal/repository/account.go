package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

const accountColumns = `id, name, phone, status, created_at`

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, phone, status) VALUES ($1, $2, $3, $4)`,
		account.ID, account.Name, account.Phone, account.Status,
	)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// GetForUpdate locks the account row for the duration of tx so concurrent
// postings against the same account serialize at the database.
func (r *AccountRepository) GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*domain.Account, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id,
	)
	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetForUpdate: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetForUpdate: %w", err)
	}
	return a, nil
}

// GetBalance returns the account's balance in one currency. An account with
// no movements in that currency has a zero balance, not a missing one.
func (r *AccountRepository) GetBalance(ctx context.Context, accountID uuid.UUID, currencyCode string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT balance FROM account_balances WHERE account_id = $1 AND currency_code = $2`,
		accountID, currencyCode,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("GetBalance: %w", err)
	}
	return balance, nil
}

func (r *AccountRepository) GetBalances(ctx context.Context, accountID uuid.UUID) ([]domain.AccountBalance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_id, currency_code, debit_total, credit_total, balance, updated_at
		FROM account_balances WHERE account_id = $1 ORDER BY currency_code`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetBalances: %w", err)
	}
	defer rows.Close()

	var balances []domain.AccountBalance
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.CurrencyCode, &b.DebitTotal, &b.CreditTotal, &b.Balance, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("GetBalances: scan: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetBalances: rows: %w", err)
	}
	return balances, nil
}

// ApplyImpact accumulates one currency's debit/credit turnover onto the
// account's statement line inside tx, creating the row on first movement.
// Balance is kept as debit_total − credit_total.
func (r *AccountRepository) ApplyImpact(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, currencyCode string, debit, credit decimal.Decimal) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO account_balances (account_id, currency_code, debit_total, credit_total, balance, updated_at)
		VALUES ($1, $2, $3, $4, $3 - $4, now())
		ON CONFLICT (account_id, currency_code)
		DO UPDATE SET
			debit_total = account_balances.debit_total + EXCLUDED.debit_total,
			credit_total = account_balances.credit_total + EXCLUDED.credit_total,
			balance = account_balances.balance + EXCLUDED.balance,
			updated_at = now()`,
		accountID, currencyCode, debit, credit,
	)
	if err != nil {
		return fmt.Errorf("ApplyImpact: %w", err)
	}
	return nil
}

func scanAccount(s scanner) (*domain.Account, error) {
	var a domain.Account
	var phone sql.NullString
	if err := s.Scan(&a.ID, &a.Name, &phone, &a.Status, &a.CreatedAt); err != nil {
		return nil, err
	}
	if phone.Valid {
		a.Phone = &phone.String
	}
	return &a, nil
}
