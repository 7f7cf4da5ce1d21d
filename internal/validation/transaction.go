package validation

import (
	"strings"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

// RuleSource resolves the structural rule for a transaction type code.
// Satisfied by *rules.Registry.
type RuleSource interface {
	Lookup(code string) (domain.TypeRule, error)
}

// Verdict is the outcome of validating one request: either Normalized is set
// and Errors is empty, or the reverse. Error order follows check order, so
// validating the same request twice yields identical output.
type Verdict struct {
	Normalized *domain.TransactionRequest
	Errors     []FieldError
}

func (v Verdict) Accepted() bool { return len(v.Errors) == 0 }

// TransactionValidator is the single validation entry point the posting
// layer calls before committing anything. It is stateless after
// construction; concurrent use needs no locking.
type TransactionValidator struct {
	rules   RuleSource
	impacts *ImpactValidator
}

func NewTransactionValidator(rules RuleSource, impacts *ImpactValidator) *TransactionValidator {
	return &TransactionValidator{rules: rules, impacts: impacts}
}

// Validate checks a submitted request against its type's rule, the meta
// field schema and the impact balance invariants. Apart from the type lookup
// (nothing further is meaningful without a rule) no check short-circuits:
// every violation is reported in one pass. The input is never mutated;
// normalization is applied to a copy returned in the verdict.
func (tv *TransactionValidator) Validate(req domain.TransactionRequest) Verdict {
	rule, err := tv.rules.Lookup(req.TypeCode)
	if err != nil {
		return Verdict{Errors: []FieldError{unknownType(req.TypeCode)}}
	}

	var errs []FieldError

	if rule.RequiresAccount && req.AccountID == nil {
		errs = append(errs, missingField("accountId"))
	}
	if rule.RequiresStock && req.ProductID == nil && req.Quantity == nil {
		errs = append(errs, missingField("stock"))
	}
	if rule.RequiresCash && (req.CashAmount == nil || !req.CashAmount.IsPositive()) {
		errs = append(errs, missingField("cashAmount"))
	}
	if rule.RequiresReferenceCode && emptyStr(req.ReferenceCode) {
		errs = append(errs, missingField("referenceCode"))
	}

	errs = append(errs, ValidateMeta(rule.MetaSchema, req.Meta)...)
	errs = append(errs, tv.impacts.Validate(req.Impacts)...)

	if len(errs) > 0 {
		return Verdict{Errors: errs}
	}

	normalized := normalizeRequest(rule, req)
	return Verdict{Normalized: &normalized}
}

// normalizeRequest produces the accepted form of a request: meta numbers in
// canonical decimal form, meta dates in RFC 3339, optional strings trimmed
// and dropped when empty.
func normalizeRequest(rule domain.TypeRule, req domain.TransactionRequest) domain.TransactionRequest {
	out := req
	out.ReferenceCode = trimOptional(req.ReferenceCode)
	out.Description = trimOptional(req.Description)
	out.Meta = normalizeMeta(rule.MetaSchema, req.Meta)
	out.Impacts = make([]domain.ImpactLine, len(req.Impacts))
	copy(out.Impacts, req.Impacts)
	return out
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func emptyStr(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
