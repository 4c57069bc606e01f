package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"cashbook/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction inserts a transaction dated txDate in the "other" category.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txDate string, txType models.TransactionType, amount string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionInCategory(t, db, txDate, txType, models.CategoryOther, amount)
}

// CreateTestTransactionInCategory inserts a transaction with an explicit category.
// Each fixture gets a distinct created_at so ordering ties are deterministic.
func CreateTestTransactionInCategory(t *testing.T, db *gorm.DB, txDate string, txType models.TransactionType, category models.Category, amount string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		TxDate:   txDate,
		Type:     txType,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
	tx.CreatedAt = time.Now().UTC().Add(time.Duration(nextID()) * time.Millisecond)
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestDebt inserts an open debt for a uniquely named person.
func CreateTestDebt(t *testing.T, db *gorm.DB, direction models.DebtDirection, amount string) *models.Debt {
	t.Helper()

	now := time.Now().UTC().Add(time.Duration(nextID()) * time.Millisecond)
	debt := &models.Debt{
		Direction: direction,
		Person:    fmt.Sprintf("Person %d", nextID()),
		Amount:    decimal.RequireFromString(amount),
		Status:    models.DebtStatusOpen,
	}
	debt.CreatedAt = now
	debt.UpdatedAt = now
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

// MarkTestDebtPaid flips a fixture debt to paid directly in the store.
func MarkTestDebtPaid(t *testing.T, db *gorm.DB, debt *models.Debt) {
	t.Helper()

	if err := debt.MarkPaid(time.Now().UTC()); err != nil {
		t.Fatalf("failed to mark test debt paid: %v", err)
	}
	if err := db.Save(debt).Error; err != nil {
		t.Fatalf("failed to save test debt: %v", err)
	}
}
