package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/ledger"
	"cashbook/internal/services"
)

// ReportHandler serves the dashboard and date-range reports.
type ReportHandler struct {
	reportService services.ReportServicer
	loc           *time.Location
	now           func() time.Time
}

// NewReportHandler creates a new ReportHandler. loc decides which calendar
// day "today" is.
func NewReportHandler(reportService services.ReportServicer, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportHandler{reportService: reportService, loc: loc, now: time.Now}
}

// ReportQuery holds the report window. Both bounds default to the current
// month.
type ReportQuery struct {
	From string `form:"from" binding:"omitempty,iso_date"`
	To   string `form:"to" binding:"omitempty,iso_date"`
}

// GetDashboard handles the dashboard view
// @Summary     Dashboard
// @Description All-time cash, today's and this month's totals, outstanding debts and the latest transactions
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.reportService.Dashboard(c.Request.Context(), h.now().In(h.loc))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetReport handles a date-range report
// @Summary     Report
// @Description Sales, expenses and net over an inclusive date range, broken down by category
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Start date (YYYY-MM-DD), default first day of this month"
// @Param       to   query string false "End date (YYYY-MM-DD), default last day of this month"
// @Success     200 {object} services.Report "Report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	monthFrom, monthTo := ledger.MonthWindow(h.now().In(h.loc))
	if query.From == "" {
		query.From = monthFrom
	}
	if query.To == "" {
		query.To = monthTo
	}

	report, err := h.reportService.Report(c.Request.Context(), query.From, query.To)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
