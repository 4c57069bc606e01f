package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"cashbook/internal/ledger"
	"cashbook/internal/models"
	"cashbook/internal/pagination"
)

// CreateTransactionInput carries a new transaction before validation.
// An empty TxDate means today.
type CreateTransactionInput struct {
	TxDate   string
	Type     models.TransactionType
	Category models.Category
	Amount   decimal.Decimal
	Person   *string
	Note     *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Date bounds are inclusive ISO dates; nil fields impose no constraint.
type TransactionFilter struct {
	FromDate *string
	ToDate   *string
	Type     *models.TransactionType
	Category *models.Category
}

// TransactionPage is one page of transactions plus totals over every row
// matching the filter, not just the page.
type TransactionPage struct {
	pagination.PageResponse[models.Transaction]
	Summary ledger.Summary `json:"summary"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*TransactionPage, error)
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
}

// CreateDebtInput carries a new debt before validation.
type CreateDebtInput struct {
	Direction models.DebtDirection
	Person    string
	Amount    decimal.Decimal
	Note      *string
}

// DebtPage is one page of debts plus the outstanding totals over all debts.
type DebtPage struct {
	pagination.PageResponse[models.Debt]
	Totals ledger.DebtSummary `json:"totals"`
}

// DebtServicer defines the contract for debt-related business logic.
type DebtServicer interface {
	CreateDebt(ctx context.Context, input CreateDebtInput) (*models.Debt, error)
	ListDebts(ctx context.Context, page pagination.PageRequest) (*DebtPage, error)
	GetDebtByID(ctx context.Context, id string) (*models.Debt, error)
	MarkPaid(ctx context.Context, id string) (*models.Debt, error)
	DeleteDebt(ctx context.Context, id string) error
	GetTotals(ctx context.Context) (*ledger.DebtSummary, error)
}

// Dashboard is the at-a-glance view: all-time cash, today, this month and
// the latest transactions.
type Dashboard struct {
	Cash          decimal.Decimal      `json:"cash"`
	Today         ledger.Summary       `json:"today"`
	Month         ledger.Summary       `json:"month"`
	Debts         ledger.DebtSummary   `json:"debts"`
	Latest        []models.Transaction `json:"latest"`
	Anomalies     []ledger.Anomaly     `json:"anomalies,omitempty"`
	TodayDate     string               `json:"today_date"`
	MonthFromDate string               `json:"month_from"`
	MonthToDate   string               `json:"month_to"`
}

// Report is a date-range summary broken down by category.
type Report struct {
	From       string               `json:"from"`
	To         string               `json:"to"`
	Summary    ledger.Summary       `json:"summary"`
	Categories []ledger.CategoryRow `json:"categories"`
}

// ReportServicer defines the contract for derived views over the ledger.
type ReportServicer interface {
	Dashboard(ctx context.Context, now time.Time) (*Dashboard, error)
	Report(ctx context.Context, from, to string) (*Report, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}

// AuthServicer defines the contract for single-owner authentication.
type AuthServicer interface {
	Enabled() bool
	Login(password string) (token string, expiresAt time.Time, err error)
}
