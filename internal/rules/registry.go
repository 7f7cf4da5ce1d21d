package rules

import (
	"fmt"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

// Registry maps every transaction type code to its structural rule. It is
// built once at process start and read-only afterwards, so lookups are safe
// from any goroutine without locking.
type Registry struct {
	rules map[domain.TransactionTypeCode]domain.TypeRule
}

// NewRegistry builds the registry from the static table and verifies it is
// exhaustive over the enumeration: every code has exactly one rule, no rule
// exists for a code outside the enumeration, and every meta schema is
// well-formed. Any violation is a startup error, not a request error.
func NewRegistry() (*Registry, error) {
	rules := make(map[domain.TransactionTypeCode]domain.TypeRule, len(ruleTable))

	for code, rule := range ruleTable {
		if !code.IsValid() {
			return nil, fmt.Errorf("NewRegistry: rule for code %q outside the enumeration", code)
		}
		if err := checkMetaSchema(rule.MetaSchema); err != nil {
			return nil, fmt.Errorf("NewRegistry: %s: %w", code, err)
		}
		rules[code] = rule
	}

	for _, code := range domain.TransactionTypeCodes() {
		if _, ok := rules[code]; !ok {
			return nil, fmt.Errorf("NewRegistry: no rule for transaction type %s", code)
		}
	}

	return &Registry{rules: rules}, nil
}

// Lookup resolves the rule for an untrusted code string. Input reaches this
// boundary before being matched to the enumeration, so the registry
// re-validates instead of trusting the caller.
func (r *Registry) Lookup(code string) (domain.TypeRule, error) {
	rule, ok := r.rules[domain.TransactionTypeCode(code)]
	if !ok {
		return domain.TypeRule{}, fmt.Errorf("Lookup: %q: %w", code, domain.ErrUnknownTransactionType)
	}
	return rule, nil
}

// Codes returns the enumeration in declaration order.
func (r *Registry) Codes() []domain.TransactionTypeCode {
	return domain.TransactionTypeCodes()
}

func checkMetaSchema(schema []domain.MetaFieldSpec) error {
	seen := make(map[string]struct{}, len(schema))
	for _, field := range schema {
		if field.Name == "" {
			return fmt.Errorf("checkMetaSchema: field with empty name")
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("checkMetaSchema: duplicate field %q", field.Name)
		}
		seen[field.Name] = struct{}{}

		if !field.Type.IsValid() {
			return fmt.Errorf("checkMetaSchema: field %q has unknown type %q", field.Name, field.Type)
		}

		switch field.Type {
		case domain.FieldTypeSelect:
			if len(field.Options) == 0 {
				return fmt.Errorf("checkMetaSchema: select field %q has no options", field.Name)
			}
			opts := make(map[string]struct{}, len(field.Options))
			for _, opt := range field.Options {
				if _, dup := opts[opt]; dup {
					return fmt.Errorf("checkMetaSchema: select field %q repeats option %q", field.Name, opt)
				}
				opts[opt] = struct{}{}
			}
		default:
			if len(field.Options) > 0 {
				return fmt.Errorf("checkMetaSchema: non-select field %q carries options", field.Name)
			}
		}
	}
	return nil
}
