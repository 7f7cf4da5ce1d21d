package posting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/validation"
)

type transactionRepo interface {
	Create(ctx context.Context, tx *sql.Tx, t *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int, error)
}

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID uuid.UUID, currencyCode string) (decimal.Decimal, error)
	GetBalances(ctx context.Context, accountID uuid.UUID) ([]domain.AccountBalance, error)
	ApplyImpact(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, currencyCode string, debit, credit decimal.Decimal) error
}

// Service posts validated transactions. Validation itself is pure; the
// commit-time serialization of concurrent submissions against the same
// account happens here, through the SQL transaction and the account row
// lock, never inside the validator.
type Service struct {
	transactions transactionRepo
	accounts     accountRepo
	validator    *validation.TransactionValidator
	db           *sql.DB
}

func NewService(
	transactions transactionRepo,
	accounts accountRepo,
	validator *validation.TransactionValidator,
	db *sql.DB,
) *Service {
	return &Service{
		transactions: transactions,
		accounts:     accounts,
		validator:    validator,
		db:           db,
	}
}

func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("GetTransaction: %w", err)
	}
	return t, nil
}

func (s *Service) ListAccountTransactions(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.Transaction, int, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, 0, fmt.Errorf("ListAccountTransactions: %w", err)
	}
	transactions, total, err := s.transactions.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ListAccountTransactions: %w", err)
	}
	return transactions, total, nil
}

func (s *Service) AccountBalance(ctx context.Context, accountID uuid.UUID, currencyCode string) (decimal.Decimal, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return decimal.Zero, fmt.Errorf("AccountBalance: %w", err)
	}
	balance, err := s.accounts.GetBalance(ctx, accountID, currencyCode)
	if err != nil {
		return decimal.Zero, fmt.Errorf("AccountBalance: %w", err)
	}
	return balance, nil
}

func (s *Service) AccountBalances(ctx context.Context, accountID uuid.UUID) ([]domain.AccountBalance, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("AccountBalances: %w", err)
	}
	balances, err := s.accounts.GetBalances(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("AccountBalances: %w", err)
	}
	return balances, nil
}
