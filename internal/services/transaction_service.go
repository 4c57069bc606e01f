package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/ledger"
	"cashbook/internal/models"
	"cashbook/internal/notify"
	"cashbook/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db         *gorm.DB
	dispatcher notify.Dispatcher
	loc        *time.Location
}

// NewTransactionService creates a new TransactionServicer. The dispatcher
// receives a message for every created transaction; loc decides what "today"
// means when a transaction is created without a date.
func NewTransactionService(db *gorm.DB, dispatcher notify.Dispatcher, loc *time.Location) TransactionServicer {
	if loc == nil {
		loc = time.Local
	}
	return &transactionService{
		db:         db,
		dispatcher: dispatcher,
		loc:        loc,
	}
}

// CreateTransaction validates and records a transaction, then hands a
// notification to the dispatcher. The notification outcome never affects
// the result.
func (s *transactionService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*models.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !input.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported category")
	}

	txDate := strings.TrimSpace(input.TxDate)
	if txDate == "" {
		txDate = ledger.Day(time.Now().In(s.loc))
	}
	if !ledger.ValidDate(txDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tx_date must be a YYYY-MM-DD date")
	}

	amount := input.Amount.Round(2)
	if amount.IsZero() {
		return nil, apperrors.ErrInvalidAmount
	}

	transaction := &models.Transaction{
		TxDate:   txDate,
		Type:     input.Type,
		Category: input.Category,
		Amount:   amount,
		Person:   trimOptional(input.Person),
		Note:     trimOptional(input.Note),
	}

	if err := s.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(context.WithoutCancel(ctx), notify.NewTransactionMessage(transaction))
	}

	return transaction, nil
}

// filtered returns a fresh query over transactions with f applied.
func (s *transactionService) filtered(ctx context.Context, f TransactionFilter) *gorm.DB {
	return applyTransactionFilters(s.db.WithContext(ctx).Model(&models.Transaction{}), f)
}

// ListTransactions retrieves a paginated, filtered list of transactions,
// newest first, with totals over the whole filtered set.
func (s *transactionService) ListTransactions(ctx context.Context, page pagination.PageRequest, filter TransactionFilter) (*TransactionPage, error) {
	page.Defaults()
	page.Cap(pagination.MaxPageSize)

	var totalItems int64
	if err := s.filtered(ctx, filter).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := s.filtered(ctx, filter).
		Order(newestFirst).
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals, err := sumByType(s.filtered(ctx, filter))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary := ledger.SummaryFromTotals(totals)
	warnAnomalies("transactions", summary.Anomalies)

	return &TransactionPage{
		PageResponse: pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems),
		Summary:      summary,
	}, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("tx_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("tx_date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	return q
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// DeleteTransaction permanently removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// RecentTransactions returns the newest limit transactions.
func (s *transactionService) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}

	transactions := []models.Transaction{}
	if err := s.db.WithContext(ctx).
		Order(newestFirst).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// trimOptional trims s and maps blank text to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
