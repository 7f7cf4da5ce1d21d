package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/korhan-dev/cari-ledger/internal/domain"
)

// TestPrecisions mirrors the seeded currency master data so unit tests can
// build a currency directory without a database.
var TestPrecisions = map[string]int32{
	"TRY": 2,
	"TL":  2,
	"USD": 2,
	"EUR": 2,
	"HAS": 3,
}

func SeedAccount(t *testing.T, db *sql.DB, name string, status domain.AccountStatus) *domain.Account {
	t.Helper()

	account := &domain.Account{
		ID:     uuid.New(),
		Name:   name,
		Status: status,
	}
	_, err := db.Exec(
		`INSERT INTO accounts (id, name, status) VALUES ($1, $2, $3)`,
		account.ID, account.Name, account.Status,
	)
	if err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return account
}

func SeedCurrency(t *testing.T, db *sql.DB, code, name string, precision int32) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO currencies (code, name, precision) VALUES ($1, $2, $3)
		 ON CONFLICT (code) DO NOTHING`,
		code, name, precision,
	)
	if err != nil {
		t.Fatalf("seed currency %s: %v", code, err)
	}
}

func SeedTransactionType(t *testing.T, db *sql.DB, code domain.TransactionTypeCode, name string) *domain.TransactionType {
	t.Helper()

	row := &domain.TransactionType{
		ID:   uuid.New(),
		Code: code,
		Name: name,
	}
	_, err := db.Exec(
		`INSERT INTO transaction_types (id, code, name) VALUES ($1, $2, $3)`,
		row.ID, row.Code, row.Name,
	)
	if err != nil {
		t.Fatalf("seed transaction type %s: %v", code, err)
	}
	return row
}
