package models

import "github.com/shopspring/decimal"

// TransactionType represents how a transaction moves cash.
type TransactionType string

const (
	TransactionTypeSale        TransactionType = "sale"
	TransactionTypeExpense     TransactionType = "expense"
	TransactionTypePayDebt     TransactionType = "pay_debt"
	TransactionTypeReceiveDebt TransactionType = "receive_debt"
	TransactionTypeAdjust      TransactionType = "adjust"
)

// AllTransactionTypes lists every known transaction type in display order.
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeSale,
		TransactionTypeExpense,
		TransactionTypePayDebt,
		TransactionTypeReceiveDebt,
		TransactionTypeAdjust,
	}
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeSale, TransactionTypeExpense, TransactionTypePayDebt,
		TransactionTypeReceiveDebt, TransactionTypeAdjust:
		return true
	}
	return false
}

// Category is the reporting bucket of a transaction.
type Category string

const (
	CategoryPhones       Category = "phones"
	CategoryTransfer     Category = "transfer"
	CategoryRepair       Category = "repair"
	CategoryService      Category = "service"
	CategoryAccessories  Category = "accessories"
	CategorySubscription Category = "subscription"
	CategoryOther        Category = "other"
)

// AllCategories lists every known category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryPhones,
		CategoryTransfer,
		CategoryRepair,
		CategoryService,
		CategoryAccessories,
		CategorySubscription,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is a cash-affecting event. It is never updated in place.
//
// TxDate is the ISO calendar date (YYYY-MM-DD) the transaction is attributed
// to; it is fixed-width so string comparison orders it correctly.
type Transaction struct {
	Base
	TxDate   string          `gorm:"type:varchar(10);not null;index" json:"tx_date"`
	Type     TransactionType `gorm:"type:varchar(20);not null;index" json:"type"`
	Category Category        `gorm:"type:varchar(30);not null;index" json:"category"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Person   *string         `json:"person"`
	Note     *string         `json:"note"`
}
