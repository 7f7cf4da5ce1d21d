package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

const currencyColumns = `code, name, precision, created_at`

type CurrencyRepository struct {
	db *sql.DB
}

func NewCurrencyRepository(db *sql.DB) *CurrencyRepository {
	return &CurrencyRepository{db: db}
}

func (r *CurrencyRepository) GetAll(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+currencyColumns+` FROM currencies ORDER BY code`,
	)
	if err != nil {
		return nil, fmt.Errorf("GetAll: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("GetAll: scan: %w", err)
		}
		currencies = append(currencies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAll: rows: %w", err)
	}
	return currencies, nil
}

func (r *CurrencyRepository) GetByCode(ctx context.Context, code string) (*domain.Currency, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+currencyColumns+` FROM currencies WHERE code = $1`, code,
	)
	c, err := scanCurrency(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("GetByCode: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("GetByCode: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepository) Create(ctx context.Context, c *domain.Currency) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO currencies (code, name, precision) VALUES ($1, $2, $3)`,
		c.Code, c.Name, c.Precision,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Create: %w", domain.ErrCurrencyExists)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func scanCurrency(s scanner) (*domain.Currency, error) {
	var c domain.Currency
	if err := s.Scan(&c.Code, &c.Name, &c.Precision, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
