package validation

import (
	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

// CurrencyChecker answers whether a currency code exists in master data and
// at what decimal precision it settles. Injected so the validator stays free
// of I/O and of any knowledge of where currencies live.
type CurrencyChecker interface {
	Exists(code string) bool
	Precision(code string) int32
}

// ImpactValidator enforces per-line shape rules and the cross-line
// double-entry balance invariant over a transaction's impact lines.
type ImpactValidator struct {
	currencies CurrencyChecker
}

func NewImpactValidator(currencies CurrencyChecker) *ImpactValidator {
	return &ImpactValidator{currencies: currencies}
}

// Validate collects every violation in the impact set. Per line, exactly one
// of debit and credit must be strictly positive. Across lines, each
// currency's debits must equal its credits at that currency's precision; a
// one-sided posting would silently corrupt account balances, so it is
// rejected here rather than reconciled after the fact.
func (v *ImpactValidator) Validate(impacts []domain.ImpactLine) []FieldError {
	if len(impacts) == 0 {
		return []FieldError{emptyImpactSet()}
	}

	var errs []FieldError

	type totals struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	sums := make(map[string]*totals, 2)
	var order []string // first-seen currency order keeps error output deterministic

	for i, line := range impacts {
		switch {
		case line.Debit.IsNegative() || line.Credit.IsNegative():
			errs = append(errs, invalidImpactLine(i, "debit and credit must not be negative"))
		case line.Debit.IsPositive() && line.Credit.IsPositive():
			errs = append(errs, invalidImpactLine(i, "a line cannot carry both a debit and a credit"))
		case line.Debit.IsZero() && line.Credit.IsZero():
			errs = append(errs, invalidImpactLine(i, "either debit or credit must be greater than zero"))
		}

		if line.CurrencyCode == "" || !v.currencies.Exists(line.CurrencyCode) {
			errs = append(errs, unknownCurrency(i, line.CurrencyCode))
			continue
		}

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
		prec := v.currencies.Precision(code)
		debit := t.debit.Round(prec)
		credit := t.credit.Round(prec)
		if !debit.Equal(credit) {
			errs = append(errs, unbalancedCurrency(code, debit.StringFixed(prec), credit.StringFixed(prec)))
		}
	}

	return errs
}
