package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

const transactionTypeColumns = `id, code, name, description, created_at, updated_at`

type TransactionTypeRepository struct {
	db *sql.DB
}

func NewTransactionTypeRepository(db *sql.DB) *TransactionTypeRepository {
	return &TransactionTypeRepository{db: db}
}

func (r *TransactionTypeRepository) GetAll(ctx context.Context) ([]domain.TransactionType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionTypeColumns+` FROM transaction_types ORDER BY code`,
	)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer rows.Close()

	var types []domain.TransactionType
	for rows.Next() {
		t, err := scanTransactionType(rows)
		if err != nil {
			return nil, fmt.Errorf("GetAll: scan: %w", err)
		}
		types = append(types, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAll: rows: %w", err)
	}
	return types, nil
}

func (r *TransactionTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionType, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionTypeColumns+` FROM transaction_types WHERE id = $1`, id,
	)
	t, err := scanTransactionType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByID: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return t, nil
}

func (r *TransactionTypeRepository) GetByCode(ctx context.Context, code domain.TransactionTypeCode) (*domain.TransactionType, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionTypeColumns+` FROM transaction_types WHERE code = $1`, code,
	)
	t, err := scanTransactionType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByCode: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByCode: %w", err)
	}
	return t, nil
}

func (r *TransactionTypeRepository) Create(ctx context.Context, t *domain.TransactionType) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transaction_types (id, code, name, description)
		VALUES ($1, $2, $3, $4)`,
		t.ID, t.Code, t.Name, t.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: %w", domain.ErrTransactionTypeExists)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (r *TransactionTypeRepository) Update(ctx context.Context, id uuid.UUID, name string, description *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transaction_types SET name = $1, description = $2, updated_at = now()
		WHERE id = $3`,
		name, description, id,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *TransactionTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transaction_types WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanTransactionType(s scanner) (*domain.TransactionType, error) {
	var t domain.TransactionType
	var description sql.NullString
	if err := s.Scan(&t.ID, &t.Code, &t.Name, &description, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		t.Description = &description.String
	}
	return &t, nil
}
