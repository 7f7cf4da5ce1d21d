package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionTypeCode is the closed set of cari transaction types. Adding a
// code here requires a matching entry in the rules registry; registry
// construction fails otherwise.
type TransactionTypeCode string

const (
	GoldEntry        TransactionTypeCode = "GOLD_ENTRY"
	DiscountCredit   TransactionTypeCode = "DISCOUNT_CREDIT"
	DiscountDebit    TransactionTypeCode = "DISCOUNT_DEBIT"
	ReturnedOut      TransactionTypeCode = "RETURNED_OUT"
	Conversion       TransactionTypeCode = "CONVERSION"
	ScrapOut         TransactionTypeCode = "SCRAP_OUT"
	ScrapIn          TransactionTypeCode = "SCRAP_IN"
	MaterialOut      TransactionTypeCode = "MATERIAL_OUT"
	MaterialIn       TransactionTypeCode = "MATERIAL_IN"
	Offset           TransactionTypeCode = "OFFSET"
	MaterialReturn   TransactionTypeCode = "MATERIAL_RETURN"
	MaterialSale     TransactionTypeCode = "MATERIAL_SALE"
	CashPayment      TransactionTypeCode = "CASH_PAYMENT"
	CashCollection   TransactionTypeCode = "CASH_COLLECTION"
	CustomProductOut TransactionTypeCode = "CUSTOM_PRODUCT_OUT"
	CustomProductIn  TransactionTypeCode = "CUSTOM_PRODUCT_IN"
)

// TransactionTypeCodes lists every code in declaration order. The registry
// exhaustiveness check and the catalog seeder iterate this slice, so it must
// stay in sync with the constants above.
func TransactionTypeCodes() []TransactionTypeCode {
	return []TransactionTypeCode{
		GoldEntry, DiscountCredit, DiscountDebit, ReturnedOut,
		Conversion, ScrapOut, ScrapIn, MaterialOut, MaterialIn,
		Offset, MaterialReturn, MaterialSale, CashPayment,
		CashCollection, CustomProductOut, CustomProductIn,
	}
}

func (c TransactionTypeCode) IsValid() bool {
	for _, known := range TransactionTypeCodes() {
		if c == known {
			return true
		}
	}
	return false
}

// ImpactLine is one debit-or-credit entry against a currency. Exactly one of
// Debit and Credit must be strictly positive and the other zero.
type ImpactLine struct {
	CurrencyCode string
	Debit        decimal.Decimal
	Credit       decimal.Decimal
}

// TransactionRequest is a raw submission as received from the caller. The
// type code arrives as an untrusted string and is matched against the
// enumeration during validation. Optional fields are nil when absent; the
// validator never mutates a request it is given.
type TransactionRequest struct {
	TypeCode      string
	AccountID     *uuid.UUID
	ReferenceCode *string
	Description   *string
	CashAmount    *decimal.Decimal
	ProductID     *uuid.UUID
	Quantity      *decimal.Decimal
	Impacts       []ImpactLine
	Meta          map[string]string
}

// Transaction is a posted, accepted transaction.
type Transaction struct {
	ID            uuid.UUID
	TypeCode      TransactionTypeCode
	AccountID     *uuid.UUID
	ReferenceCode *string
	Description   *string
	CashAmount    *decimal.Decimal
	ProductID     *uuid.UUID
	Quantity      *decimal.Decimal
	Impacts       []ImpactLine
	Meta          json.RawMessage
	CreatedAt     time.Time
}
