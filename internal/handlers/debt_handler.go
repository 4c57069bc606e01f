package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/models"
	"cashbook/internal/pagination"
	"cashbook/internal/services"
)

// DebtHandler handles debt-related requests.
type DebtHandler struct {
	debtService  services.DebtServicer
	auditService services.AuditServicer
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService services.DebtServicer, auditService services.AuditServicer) *DebtHandler {
	return &DebtHandler{debtService: debtService, auditService: auditService}
}

// CreateDebtRequest represents the request payload for recording a debt.
type CreateDebtRequest struct {
	Direction models.DebtDirection `json:"direction" binding:"required,debt_direction"`
	Person    string               `json:"person" binding:"required,max=200"`
	Amount    *decimal.Decimal     `json:"amount" binding:"required"`
	Note      *string              `json:"note" binding:"omitempty,max=1000"`
}

// CreateDebt handles recording a new open debt
// @Summary     Create a debt
// @Description Record money owed to the business (owed_to_me) or by it (owed_by_me)
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), services.CreateDebtInput{
		Direction: req.Direction,
		Person:    req.Person,
		Amount:    *req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "CREATE_DEBT", "debt", debt.ID, c.ClientIP(),
		map[string]any{"direction": debt.Direction, "amount": debt.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// ListDebts handles listing debts
// @Summary     List debts
// @Description Open debts first, then most recently updated, with outstanding totals
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 50, max 300)"
// @Success     200 {object} services.DebtPage "Debts with totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts [get]
func (h *DebtHandler) ListDebts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.debtService.ListDebts(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// MarkPaid handles settling a debt
// @Summary     Mark debt paid
// @Description Move an open debt to paid. Paid debts cannot be reopened.
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} models.Debt "Debt marked paid"
// @Failure     400 {object} ErrorResponse "Invalid debt ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     409 {object} ErrorResponse "Debt already paid"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id}/paid [post]
func (h *DebtHandler) MarkPaid(c *gin.Context) {
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	debt, err := h.debtService.MarkPaid(c.Request.Context(), debtID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "MARK_DEBT_PAID", "debt", debtID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"debt": debt})
}

// DeleteDebt handles the deletion of a debt
// @Summary     Delete debt
// @Description Permanently delete a debt. Requires confirm=true.
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id      path  string true "Debt ID"
// @Param       confirm query bool   true "Must be true"
// @Success     200 {object} MessageResponse "Debt deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID or missing confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	debtID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := requireConfirmation(c); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), debtID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "DELETE_DEBT", "debt", debtID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}
