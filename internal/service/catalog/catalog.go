package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/logging"
)

type typeRepo interface {
	GetAll(ctx context.Context) ([]domain.TransactionType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TransactionType, error)
	GetByCode(ctx context.Context, code domain.TransactionTypeCode) (*domain.TransactionType, error)
	Create(ctx context.Context, t *domain.TransactionType) error
	Update(ctx context.Context, id uuid.UUID, name string, description *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ruleSource interface {
	Lookup(code string) (domain.TypeRule, error)
	Codes() []domain.TransactionTypeCode
}

// Service manages the transaction-type catalog. The rules registry is the
// source of truth for structural rules; this catalog owns only display
// metadata (names, descriptions) and is kept in sync with the enumeration.
type Service struct {
	types typeRepo
	rules ruleSource
}

func NewService(types typeRepo, rules ruleSource) *Service {
	return &Service{types: types, rules: rules}
}

// Seed inserts a catalog row for every enumerated code that has none yet,
// using defaultLabels for names. Called once at startup so the UI's type
// list can never miss a postable code.
func (s *Service) Seed(ctx context.Context, defaultLabels map[domain.TransactionTypeCode]string) error {
	log := logging.FromContext(ctx)

	for _, code := range s.rules.Codes() {
		_, err := s.types.GetByCode(ctx, code)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("Seed: %s: %w", code, err)
		}

		name := defaultLabels[code]
		if name == "" {
			name = string(code)
		}
		row := &domain.TransactionType{ID: uuid.New(), Code: code, Name: name}
		if err := s.types.Create(ctx, row); err != nil {
			// a concurrent instance may have seeded the same code
			if errors.Is(err, domain.ErrTransactionTypeExists) {
				continue
			}
			return fmt.Errorf("Seed: %s: %w", code, err)
		}
		log.Info("seeded transaction type", "code", code, "name", name)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.TransactionType, error) {
	types, err := s.types.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return types, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.TransactionType, error) {
	t, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return t, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.TransactionType, error) {
	if !domain.TransactionTypeCode(code).IsValid() {
		return nil, fmt.Errorf("GetByCode: %q: %w", code, domain.ErrUnknownTransactionType)
	}
	t, err := s.types.GetByCode(ctx, domain.TransactionTypeCode(code))
	if err != nil {
		return nil, fmt.Errorf("GetByCode: %w", err)
	}
	return t, nil
}

// RuleForCode returns the structural rule document for a code. This shape is
// the wire contract downstream forms render from.
func (s *Service) RuleForCode(code string) (domain.TypeRule, error) {
	rule, err := s.rules.Lookup(code)
	if err != nil {
		return domain.TypeRule{}, fmt.Errorf("RuleForCode: %w", err)
	}
	return rule, nil
}

// Create adds a catalog row for an enumerated code. Codes outside the
// enumeration are rejected: a catalog row without a registry rule would be a
// type nothing can ever post.
func (s *Service) Create(ctx context.Context, code, name string, description *string) (*domain.TransactionType, error) {
	if !domain.TransactionTypeCode(code).IsValid() {
		return nil, fmt.Errorf("Create: %q: %w", code, domain.ErrUnknownTransactionType)
	}
	if name == "" {
		return nil, fmt.Errorf("Create: empty name: %w", domain.ErrInvalidRequest)
	}

	row := &domain.TransactionType{
		ID:          uuid.New(),
		Code:        domain.TransactionTypeCode(code),
		Name:        name,
		Description: description,
	}
	if err := s.types.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return s.Get(ctx, row.ID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.TransactionType, error) {
	if name == "" {
		return nil, fmt.Errorf("Update: empty name: %w", domain.ErrInvalidRequest)
	}
	if err := s.types.Update(ctx, id, name, description); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
