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

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount accepts a JSON number or a decimal string.
type CreateTransactionRequest struct {
	TxDate   string                 `json:"tx_date" binding:"omitempty,iso_date"`
	Type     models.TransactionType `json:"type" binding:"required,tx_type"`
	Category models.Category        `json:"category" binding:"required,tx_category"`
	Amount   *decimal.Decimal       `json:"amount" binding:"required"`
	Person   *string                `json:"person" binding:"omitempty,max=200"`
	Note     *string                `json:"note" binding:"omitempty,max=1000"`
}

// TransactionListQuery holds the list filters. Dates are inclusive.
type TransactionListQuery struct {
	From     string `form:"from" binding:"omitempty,iso_date"`
	To       string `form:"to" binding:"omitempty,iso_date"`
	Type     string `form:"type" binding:"omitempty,tx_type"`
	Category string `form:"category" binding:"omitempty,tx_category"`
}

// filter converts the query into a service filter; empty values impose no
// constraint.
func (q TransactionListQuery) filter() services.TransactionFilter {
	var f services.TransactionFilter
	if q.From != "" {
		f.FromDate = &q.From
	}
	if q.To != "" {
		f.ToDate = &q.To
	}
	if q.Type != "" {
		t := models.TransactionType(q.Type)
		f.Type = &t
	}
	if q.Category != "" {
		c := models.Category(q.Category)
		f.Category = &c
	}
	return f
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a sale, expense, debt payment, debt receipt or adjustment. tx_date defaults to today.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), services.CreateTransactionInput{
		TxDate:   req.TxDate,
		Type:     req.Type,
		Category: req.Category,
		Amount:   *req.Amount,
		Person:   req.Person,
		Note:     req.Note,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]any{"type": transaction.Type, "category": transaction.Category, "amount": transaction.Amount.String()})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions handles listing transactions
// @Summary     List transactions
// @Description Newest first, with sales/expenses/net totals over every matching row
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 500)"
// @Param       from      query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       to        query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       type      query string false "sale, expense, pay_debt, receive_debt or adjust"
// @Param       category  query string false "phones, transfer, repair, service, accessories, subscription or other"
// @Success     200 {object} services.TransactionPage "Paginated transactions with totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var query TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.From != "" && query.To != "" && query.From > query.To {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must not be after to"))
		return
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), page, query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Permanently delete a transaction. Requires confirm=true.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id      path  string true "Transaction ID"
// @Param       confirm query bool   true "Must be true"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID or missing confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := requireConfirmation(c); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(c.Request.Context(), "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
