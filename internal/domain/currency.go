package domain

import "time"

// DefaultCurrencyPrecision is used when a currency does not declare its own
// decimal precision.
const DefaultCurrencyPrecision int32 = 2

// Currency is a master-data record. Code is the opaque identifier impact
// lines reference (TRY, USD, HAS, ...); Precision is the number of decimal
// places balance comparisons are rounded to.
type Currency struct {
	Code      string
	Name      string
	Precision int32
	CreatedAt time.Time
}
