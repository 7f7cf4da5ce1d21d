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

const transactionColumns = `id, type_code, account_id, reference_code, description,
	cash_amount, product_id, quantity, meta, created_at`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create persists a transaction and its impact lines inside tx. Line order
// is preserved through line_index.
func (r *TransactionRepository) Create(ctx context.Context, tx *sql.Tx, t *domain.Transaction) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (
			id, type_code, account_id, reference_code, description,
			cash_amount, product_id, quantity, meta, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.TypeCode, t.AccountID, t.ReferenceCode, t.Description,
		decimalPtr(t.CashAmount), t.ProductID, decimalPtr(t.Quantity), t.Meta, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Create: transaction: %w", err)
	}

	for i, line := range t.Impacts {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO transaction_impacts (transaction_id, line_index, currency_code, debit, credit)
			VALUES ($1, $2, $3, $4, $5)`,
			t.ID, i, line.CurrencyCode, line.Debit, line.Credit,
		)
		if err != nil {
			return fmt.Errorf("Create: impact %d: %w", i, err)
		}
	}

	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id,
	)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}

	if t.Impacts, err = r.getImpacts(ctx, t.ID); err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return t, nil
}

// ListByAccount returns an account's transactions, newest first, plus the
// total count for pagination.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ListByAccount: count: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE account_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListByAccount: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ListByAccount: scan: %w", err)
		}
		transactions = append(transactions, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListByAccount: rows: %w", err)
	}

	for i := range transactions {
		if transactions[i].Impacts, err = r.getImpacts(ctx, transactions[i].ID); err != nil {
			return nil, 0, fmt.Errorf("ListByAccount: %w", err)
		}
	}
	return transactions, total, nil
}

func (r *TransactionRepository) getImpacts(ctx context.Context, transactionID uuid.UUID) ([]domain.ImpactLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT currency_code, debit, credit FROM transaction_impacts
		WHERE transaction_id = $1 ORDER BY line_index`,
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("getImpacts: %w", err)
	}
	defer rows.Close()

	var impacts []domain.ImpactLine
	for rows.Next() {
		var line domain.ImpactLine
		if err := rows.Scan(&line.CurrencyCode, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("getImpacts: scan: %w", err)
		}
		impacts = append(impacts, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("getImpacts: rows: %w", err)
	}
	return impacts, nil
}

func scanTransaction(s scanner) (*domain.Transaction, error) {
	var t domain.Transaction
	var accountID, productID uuid.NullUUID
	var referenceCode, description sql.NullString
	var cashAmount, quantity decimal.NullDecimal
	var meta []byte

	err := s.Scan(
		&t.ID, &t.TypeCode, &accountID, &referenceCode, &description,
		&cashAmount, &productID, &quantity, &meta, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if accountID.Valid {
		t.AccountID = &accountID.UUID
	}
	if productID.Valid {
		t.ProductID = &productID.UUID
	}
	if referenceCode.Valid {
		t.ReferenceCode = &referenceCode.String
	}
	if description.Valid {
		t.Description = &description.String
	}
	if cashAmount.Valid {
		t.CashAmount = &cashAmount.Decimal
	}
	if quantity.Valid {
		t.Quantity = &quantity.Decimal
	}
	if meta != nil {
		t.Meta = meta
	}
	return &t, nil
}

func decimalPtr(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
