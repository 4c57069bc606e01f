package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/ledger"
	"cashbook/internal/models"
)

// reportService derives dashboard and report views from stored records.
type reportService struct {
	db           *gorm.DB
	transactions TransactionServicer
	debts        DebtServicer
	recentLimit  int
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, transactions TransactionServicer, debts DebtServicer, recentLimit int) ReportServicer {
	return &reportService{
		db:           db,
		transactions: transactions,
		debts:        debts,
		recentLimit:  recentLimit,
	}
}

// Dashboard computes the all-time cash position, today's and this month's
// summaries in now's location, outstanding debts and the latest transactions.
func (s *reportService) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	totals, err := sumByType(s.db.WithContext(ctx).Model(&models.Transaction{}))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	cash, anomalies := ledger.BalanceFromTotals(totals)
	warnAnomalies("cash", anomalies)

	today := ledger.Day(now)
	monthFrom, monthTo := ledger.MonthWindow(now)

	month, err := fetchWindow(s.db.WithContext(ctx), monthFrom, monthTo)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	debts, err := s.debts.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.transactions.RecentTransactions(ctx, s.recentLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Cash:          cash,
		Today:         ledger.Summarize(month, today, today),
		Month:         ledger.Summarize(month, monthFrom, monthTo),
		Debts:         *debts,
		Latest:        latest,
		Anomalies:     anomalies,
		TodayDate:     today,
		MonthFromDate: monthFrom,
		MonthToDate:   monthTo,
	}, nil
}

// Report summarizes every transaction dated in [from, to] and breaks the
// window down by category.
func (s *reportService) Report(ctx context.Context, from, to string) (*Report, error) {
	if !ledger.ValidDate(from) || !ledger.ValidDate(to) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from and to must be YYYY-MM-DD dates")
	}
	if from > to {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to")
	}

	txs, err := fetchWindow(s.db.WithContext(ctx), from, to)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := ledger.Summarize(txs, from, to)
	// ByCategory sees the same window rows as Summarize, so its anomalies
	// repeat summary.Anomalies.
	rows, _ := ledger.ByCategory(txs)
	warnAnomalies("report", summary.Anomalies)

	return &Report{
		From:       from,
		To:         to,
		Summary:    summary,
		Categories: rows,
	}, nil
}
