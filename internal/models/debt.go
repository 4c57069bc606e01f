package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DebtDirection tells whether the business is owed money or owes it.
type DebtDirection string

const (
	DebtOwedToMe DebtDirection = "owed_to_me"
	DebtOwedByMe DebtDirection = "owed_by_me"
)

// Valid reports whether d is a known direction.
func (d DebtDirection) Valid() bool {
	return d == DebtOwedToMe || d == DebtOwedByMe
}

// DebtStatus is the two-state lifecycle of a debt: open, then paid.
type DebtStatus string

const (
	DebtStatusOpen DebtStatus = "open"
	DebtStatusPaid DebtStatus = "paid"
)

// Valid reports whether s is a known status.
func (s DebtStatus) Valid() bool {
	return s == DebtStatusOpen || s == DebtStatusPaid
}

// ErrDebtNotOpen is returned when a state transition requires an open debt.
var ErrDebtNotOpen = errors.New("debt is not open")

// Debt is a receivable or payable tracked independently of the ledger.
type Debt struct {
	Base
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
	Direction DebtDirection   `gorm:"type:varchar(20);not null" json:"direction"`
	Person    string          `gorm:"not null" json:"person"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Note      *string         `json:"note"`
	Status    DebtStatus      `gorm:"type:varchar(10);not null;default:'open';index" json:"status"`
}

// MarkPaid moves an open debt to paid. Paid debts cannot be reopened.
func (d *Debt) MarkPaid(now time.Time) error {
	if d.Status != DebtStatusOpen {
		return ErrDebtNotOpen
	}
	d.Status = DebtStatusPaid
	d.UpdatedAt = now
	return nil
}
