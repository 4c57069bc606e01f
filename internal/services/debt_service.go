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
	"cashbook/internal/pagination"
)

// maxDebtPageSize bounds a single debts listing.
const maxDebtPageSize = 300

// debtService handles debt-related business logic.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// CreateDebt validates and records an open debt.
func (s *debtService) CreateDebt(ctx context.Context, input CreateDebtInput) (*models.Debt, error) {
	if !input.Direction.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "direction must be owed_to_me or owed_by_me")
	}

	person := strings.TrimSpace(input.Person)
	if person == "" {
		return nil, apperrors.ErrPersonRequired
	}

	amount := input.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Amount must be greater than zero")
	}

	now := time.Now().UTC()
	debt := &models.Debt{
		Direction: input.Direction,
		Person:    person,
		Amount:    amount,
		Note:      trimOptional(input.Note),
		Status:    models.DebtStatusOpen,
	}
	debt.CreatedAt = now
	debt.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// ListDebts returns open debts first, most recently updated first, together
// with the outstanding totals.
func (s *debtService) ListDebts(ctx context.Context, page pagination.PageRequest) (*DebtPage, error) {
	page.Defaults()
	page.Cap(maxDebtPageSize)

	var totalItems int64
	if err := s.db.WithContext(ctx).Model(&models.Debt{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var debts []models.Debt
	if err := s.db.WithContext(ctx).
		Order("status ASC, updated_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals, err := s.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &DebtPage{
		PageResponse: pagination.NewPageResponse(debts, page.Page, page.PageSize, totalItems),
		Totals:       *totals,
	}, nil
}

// GetDebtByID retrieves a single debt.
func (s *debtService) GetDebtByID(ctx context.Context, id string) (*models.Debt, error) {
	var debt models.Debt
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// MarkPaid moves an open debt to paid. The update is conditional on the
// stored status, so two concurrent calls cannot both succeed.
func (s *debtService) MarkPaid(ctx context.Context, id string) (*models.Debt, error) {
	debt, err := s.GetDebtByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := debt.MarkPaid(now); err != nil {
		if debt.Status == models.DebtStatusPaid {
			return nil, apperrors.Wrap(apperrors.ErrDebtAlreadyPaid, err)
		}
		return nil, apperrors.WithMessage(apperrors.ErrDebtAlreadyPaid, "Debt is not open")
	}

	result := s.db.WithContext(ctx).
		Model(&models.Debt{}).
		Where("id = ? AND status = ?", id, models.DebtStatusOpen).
		Updates(map[string]any{"status": models.DebtStatusPaid, "updated_at": now})
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.Wrap(apperrors.ErrDebtAlreadyPaid, models.ErrDebtNotOpen)
	}
	return debt, nil
}

// DeleteDebt permanently removes a debt.
func (s *debtService) DeleteDebt(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Debt{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDebtNotFound
	}
	return nil
}

// GetTotals sums every debt that is not paid. Debts with an unknown status
// or direction are reported as anomalies.
func (s *debtService) GetTotals(ctx context.Context) (*ledger.DebtSummary, error) {
	var debts []models.Debt
	if err := s.db.WithContext(ctx).
		Where("status <> ?", models.DebtStatusPaid).
		Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := ledger.DebtTotals(debts)
	warnAnomalies("debts", totals.Anomalies)
	return &totals, nil
}
