package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/korhan-dev/cari-ledger/internal/domain"
	"github.com/korhan-dev/cari-ledger/internal/logging"
)

type catalogService interface {
	List(ctx context.Context) ([]domain.TransactionType, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TransactionType, error)
	GetByCode(ctx context.Context, code string) (*domain.TransactionType, error)
	RuleForCode(code string) (domain.TypeRule, error)
	Create(ctx context.Context, code, name string, description *string) (*domain.TransactionType, error)
	Update(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.TransactionType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionTypeHandler struct {
	catalog catalogService
}

func NewTransactionTypeHandler(catalog catalogService) *TransactionTypeHandler {
	return &TransactionTypeHandler{catalog: catalog}
}

type transactionTypeDTO struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTransactionTypeDTO(t *domain.TransactionType) transactionTypeDTO {
	return transactionTypeDTO{
		ID:          t.ID,
		Code:        string(t.Code),
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type upsertTransactionTypeRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *TransactionTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.catalog.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Warn("type list failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	items := make([]transactionTypeDTO, len(types))
	for i := range types {
		items[i] = toTransactionTypeDTO(&types[i])
	}
	RespondSuccess(w, http.StatusOK, items)
}

func (h *TransactionTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	t, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toTransactionTypeDTO(t))
}

func (h *TransactionTypeHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	t, err := h.catalog.GetByCode(r.Context(), r.PathValue("code"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toTransactionTypeDTO(t))
}

// GetRule serves the structural rule document for a code. The JSON shape
// (requiresAccount, requiresStock, requiresCash, requiresReferenceCode,
// metaSchema) is a contract: forms render their fields directly from it.
func (h *TransactionTypeHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.catalog.RuleForCode(r.PathValue("code"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, rule)
}

func (h *TransactionTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req upsertTransactionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	t, err := h.catalog.Create(r.Context(), req.Code, req.Name, req.Description)
	if err != nil {
		logging.FromContext(r.Context()).Warn("type create failed", "code", req.Code, "error", err)
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, toTransactionTypeDTO(t))
}

func (h *TransactionTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	var req upsertTransactionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	t, err := h.catalog.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, toTransactionTypeDTO(t))
}

func (h *TransactionTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		RespondDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
