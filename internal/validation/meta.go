package validation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

// Date layouts accepted for meta date fields. Values are normalized to
// RFC 3339 on acceptance.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ValidateMeta checks a submitted key/value map against a type's dynamic
// field schema. A nil or empty schema accepts any map, and keys the schema
// does not know are ignored rather than rejected, so schema evolution never
// retroactively breaks older payloads. Fields are validated independently
// and every error is collected.
func ValidateMeta(schema []domain.MetaFieldSpec, meta map[string]string) []FieldError {
	var errs []FieldError

	for _, field := range schema {
		value := meta[field.Name]

		// an absent key and an empty string are the same thing to a form
		if value == "" {
			if field.Required {
				errs = append(errs, missingField(field.Name))
			}
			continue
		}

		switch field.Type {
		case domain.FieldTypeText:
			// any string
		case domain.FieldTypeNumber:
			if _, err := decimal.NewFromString(value); err != nil {
				errs = append(errs, invalidFieldType(field.Name, "number"))
			}
		case domain.FieldTypeDate:
			if _, ok := parseDate(value); !ok {
				errs = append(errs, invalidFieldType(field.Name, "date"))
			}
		case domain.FieldTypeSelect:
			if !containsOption(field.Options, value) {
				errs = append(errs, invalidFieldOption(field.Name, value))
			}
		}
	}

	return errs
}

// normalizeMeta returns a copy of meta with number values rewritten to their
// canonical decimal form and date values to RFC 3339. Call only after
// ValidateMeta reported no errors; unparseable values pass through untouched.
func normalizeMeta(schema []domain.MetaFieldSpec, meta map[string]string) map[string]string {
	if len(meta) == 0 {
		return nil
	}

	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = v
	}

	for _, field := range schema {
		value := out[field.Name]
		if value == "" {
			continue
		}
		switch field.Type {
		case domain.FieldTypeNumber:
			if d, err := decimal.NewFromString(value); err == nil {
				out[field.Name] = d.String()
			}
		case domain.FieldTypeDate:
			if t, ok := parseDate(value); ok {
				out[field.Name] = t.UTC().Format(time.RFC3339)
			}
		}
	}

	return out
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
