package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
	"github.com/SscSPs/org_finance_app/internal/dto"
	"github.com/SscSPs/org_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the dashboard aggregates.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	recordService    portssvc.AnnualRecordService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService, ars portssvc.AnnualRecordService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		recordService:    ars,
	}
}

// registerReportingRoutes registers the public dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, recordService portssvc.AnnualRecordService) {
	h := newReportingHandler(reportingService, recordService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthlyBreakdown)
		reports.GET("/breakdown/year", h.getYearBreakdown)
		reports.GET("/breakdown/semester", h.getSemesterBreakdown)
		reports.GET("/top-projects", h.getTopProjects)
		reports.GET("/payment-modes", h.getRevenueByPaymentMode)
		reports.GET("/comparison", h.getAnnualComparison)
		reports.GET("/tickets", h.getRecentTickets)
		reports.GET("/progress", h.getSemesterProgress)
		reports.GET("/annual-record/:startYear", h.getAnnualRecord)
	}
}

// parseYearParam reads the optional ?year= query; 0 means the current
// academic year.
func parseYearParam(c *gin.Context) (int, error) {
	v := c.Query("year")
	if v == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil || year < 1900 || year > 9999 {
		return 0, errors.New("year must be a 4-digit calendar year")
	}
	return year, nil
}

// parseMetricParam reads the ?metric= query, defaulting to expenses.
func parseMetricParam(c *gin.Context) (domain.BreakdownMetric, error) {
	switch v := c.DefaultQuery("metric", "expenses"); v {
	case "expenses":
		return domain.MetricExpenses, nil
	case "revenue":
		return domain.MetricRevenue, nil
	default:
		return "", errors.New("metric must be expenses or revenue")
	}
}

// getSummary godoc
// @Summary Dashboard financial summary
// @Description Returns the current academic year's totals, net income, and carried balance
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(*summary))
}

// getMonthlyBreakdown godoc
// @Summary Monthly expense/revenue series
// @Description Returns 12 monthly buckets in academic order (Aug through Jul) for the requested year
// @Tags reports
// @Produce  json
// @Param   year query int false "Academic year start (defaults to current)"
// @Success 200 {object} dto.MonthlyBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to build monthly series"
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := parseYearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	academicYear, points, err := h.reportingService.MonthlyBreakdown(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to build monthly series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyBreakdownResponse(academicYear, points))
}

// getYearBreakdown godoc
// @Summary Per-project breakdown for an academic year
// @Description Ranks projects by expenses or revenue within the academic year, descending
// @Tags reports
// @Produce  json
// @Param   year query int false "Academic year start (defaults to current)"
// @Param   metric query string false "Breakdown metric" Enums(expenses, revenue)
// @Success 200 {array} dto.ProjectAmountResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build breakdown"
// @Router /reports/breakdown/year [get]
func (h *reportingHandler) getYearBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := parseYearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metric, err := parseMetricParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reportingService.AcademicYearBreakdown(c.Request.Context(), year, metric)
	if err != nil {
		logger.Error("Failed to build year breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAmountResponses(rows))
}

// getSemesterBreakdown godoc
// @Summary Per-project breakdown for a semester
// @Description Ranks projects by expenses or revenue within one semester
// @Tags reports
// @Produce  json
// @Param   year query int false "Calendar year of the semester (defaults to current)"
// @Param   semester query string false "Semester" Enums(first, second)
// @Param   metric query string false "Breakdown metric" Enums(expenses, revenue)
// @Success 200 {array} dto.ProjectAmountResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build breakdown"
// @Router /reports/breakdown/semester [get]
func (h *reportingHandler) getSemesterBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := parseYearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metric, err := parseMetricParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	term := domain.SemesterTerm{
		Year:     year,
		Semester: domain.Semester(c.DefaultQuery("semester", string(domain.SemesterFirst))),
	}

	rows, err := h.reportingService.SemesterBreakdown(c.Request.Context(), term, metric)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build semester breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAmountResponses(rows))
}

// getTopProjects godoc
// @Summary Top projects by metric
// @Description Returns the largest projects of the academic year by expenses or revenue
// @Tags reports
// @Produce  json
// @Param   year query int false "Academic year start (defaults to current)"
// @Param   metric query string false "Breakdown metric" Enums(expenses, revenue)
// @Param   limit query int false "Number of projects (defaults to 5)"
// @Success 200 {array} dto.ProjectAmountResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build top projects"
// @Router /reports/top-projects [get]
func (h *reportingHandler) getTopProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := parseYearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metric, err := parseMetricParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
		return
	}

	rows, err := h.reportingService.TopProjects(c.Request.Context(), year, limit, metric)
	if err != nil {
		logger.Error("Failed to build top projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build top projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectAmountResponses(rows))
}

// getRevenueByPaymentMode godoc
// @Summary Revenue grouped by payment mode
// @Description Groups the academic year's realized revenue by payment mode
// @Tags reports
// @Produce  json
// @Param   year query int false "Academic year start (defaults to current)"
// @Success 200 {array} dto.PaymentModeAmountResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to group revenue"
// @Router /reports/payment-modes [get]
func (h *reportingHandler) getRevenueByPaymentMode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := parseYearParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.reportingService.RevenueByPaymentMode(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to group revenue by payment mode", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to group revenue"})
		return
	}

	out := make([]dto.PaymentModeAmountResponse, len(rows))
	for i, row := range rows {
		out[i] = dto.PaymentModeAmountResponse{Mode: row.Mode, Total: row.Total}
	}
	c.JSON(http.StatusOK, out)
}

// getAnnualComparison godoc
// @Summary Year-over-year comparison
// @Description Compares the current academic year's live total against the previous year's frozen snapshot
// @Tags reports
// @Produce  json
// @Param   metric query string false "Comparison metric" Enums(expenses, revenue)
// @Success 200 {object} dto.YearComparisonResponse
// @Failure 400 {object} map[string]string "Invalid metric"
// @Failure 500 {object} map[string]string "Failed to build comparison"
// @Router /reports/comparison [get]
func (h *reportingHandler) getAnnualComparison(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	metric, err := parseMetricParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comparison, err := h.recordService.AnnualComparison(c.Request.Context(), metric)
	if err != nil {
		logger.Error("Failed to build annual comparison", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build comparison"})
		return
	}

	c.JSON(http.StatusOK, dto.ToYearComparisonResponse(*comparison))
}

// getRecentTickets godoc
// @Summary Recent project submissions
// @Description Lists the latest project submissions of the current academic year
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.ProjectTicketResponse
// @Failure 500 {object} map[string]string "Failed to list tickets"
// @Router /reports/tickets [get]
func (h *reportingHandler) getRecentTickets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tickets, err := h.reportingService.RecentTickets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recent tickets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tickets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectTicketResponses(tickets))
}

// getSemesterProgress godoc
// @Summary Semester progress
// @Description Reports days left until the academic year closes and progress against the nominal semester length
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SemesterProgressResponse
// @Failure 500 {object} map[string]string "Failed to compute progress"
// @Router /reports/progress [get]
func (h *reportingHandler) getSemesterProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	progress, err := h.reportingService.SemesterProgress(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute semester progress", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}

	c.JSON(http.StatusOK, dto.SemesterProgressResponse{
		DaysLeft:   progress.DaysLeft,
		TotalDays:  progress.TotalDays,
		Percentage: progress.Percentage,
	})
}

// getAnnualRecord godoc
// @Summary Academic-year snapshot
// @Description Returns the frozen snapshot of an academic year, computing it (and any missing predecessors) on first access
// @Tags reports
// @Produce  json
// @Param   startYear path int true "Academic year start, e.g. 2024"
// @Success 200 {object} domain.AnnualRecord
// @Failure 400 {object} map[string]string "Invalid or not yet closed year"
// @Failure 500 {object} map[string]string "Failed to load annual record"
// @Router /reports/annual-record/{startYear} [get]
func (h *reportingHandler) getAnnualRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	startYear, err := strconv.Atoi(c.Param("startYear"))
	if err != nil || startYear < 1900 || startYear > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startYear must be a 4-digit calendar year"})
		return
	}

	record, err := h.recordService.GetOrCreateRecord(c.Request.Context(), startYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to load annual record", slog.Int("start_year", startYear), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load annual record"})
		return
	}

	c.JSON(http.StatusOK, record)
}
