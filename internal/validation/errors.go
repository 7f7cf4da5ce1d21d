package validation

import "fmt"

// Error codes surfaced to callers. The handler layer forwards these verbatim
// so forms can highlight every offending field in a single round trip.
const (
	CodeUnknownTransactionType   = "UNKNOWN_TRANSACTION_TYPE"
	CodeMissingRequiredField     = "MISSING_REQUIRED_FIELD"
	CodeInvalidFieldType         = "INVALID_FIELD_TYPE"
	CodeInvalidFieldOption       = "INVALID_FIELD_OPTION"
	CodeEmptyImpactSet           = "EMPTY_IMPACT_SET"
	CodeInvalidImpactLine        = "INVALID_IMPACT_LINE"
	CodeUnknownCurrency          = "UNKNOWN_CURRENCY"
	CodeUnbalancedCurrencyImpact = "UNBALANCED_CURRENCY_IMPACT"
)

// FieldError is one violated invariant. Details carries structured context
// for errors that need more than a field name, e.g. the per-currency totals
// of an unbalanced impact group.
type FieldError struct {
	Code    string            `json:"code"`
	Field   string            `json:"field"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func unknownType(code string) FieldError {
	return FieldError{
		Code:    CodeUnknownTransactionType,
		Field:   "transactionTypeCode",
		Message: fmt.Sprintf("unknown transaction type %q", code),
	}
}

func missingField(name string) FieldError {
	return FieldError{
		Code:    CodeMissingRequiredField,
		Field:   name,
		Message: "required",
	}
}

func invalidFieldType(name string, want string) FieldError {
	return FieldError{
		Code:    CodeInvalidFieldType,
		Field:   name,
		Message: fmt.Sprintf("must be a valid %s", want),
	}
}

func invalidFieldOption(name, value string) FieldError {
	return FieldError{
		Code:    CodeInvalidFieldOption,
		Field:   name,
		Message: fmt.Sprintf("%q is not an allowed option", value),
	}
}

func emptyImpactSet() FieldError {
	return FieldError{
		Code:    CodeEmptyImpactSet,
		Field:   "impacts",
		Message: "at least one impact line is required",
	}
}

func invalidImpactLine(index int, reason string) FieldError {
	return FieldError{
		Code:    CodeInvalidImpactLine,
		Field:   fmt.Sprintf("impacts[%d]", index),
		Message: reason,
	}
}

func unknownCurrency(index int, code string) FieldError {
	return FieldError{
		Code:    CodeUnknownCurrency,
		Field:   fmt.Sprintf("impacts[%d].currencyId", index),
		Message: fmt.Sprintf("unknown currency %q", code),
	}
}

func unbalancedCurrency(code, debitTotal, creditTotal string) FieldError {
	return FieldError{
		Code:    CodeUnbalancedCurrencyImpact,
		Field:   "impacts",
		Message: fmt.Sprintf("%s debits (%s) do not equal credits (%s)", code, debitTotal, creditTotal),
		Details: map[string]string{
			"currency":    code,
			"debitTotal":  debitTotal,
			"creditTotal": creditTotal,
		},
	}
}
