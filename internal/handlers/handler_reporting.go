package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/cleaning_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/SscSPs/cleaning_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests for activity reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers the /reports routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/monthly", h.getMonthlyReport)
		reportingGroup.GET("/taxyear", h.getTaxYearReport)
		reportingGroup.GET("/mileage", h.getMileageAllowance)
	}
}

// getMonthlyReport godoc
// @Summary Monthly summary
// @Description Without year and month only the available months are returned
// @Tags reports
// @Produce json
// @Param client_id query string false "Only this client's activity"
// @Param year query int false "Calendar year"
// @Param month query int false "Month 1-12"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /api/reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("client_id")

	year, err := optionalIntQuery(c, "year")
	if err != nil {
		badRequest(c, logger, "year must be a number", err)
		return
	}
	month, err := optionalIntQuery(c, "month")
	if err != nil || (month != nil && (*month < 1 || *month > 12)) {
		badRequest(c, logger, "month must be a number from 1 to 12", err)
		return
	}

	var period *domain.YearMonth
	if year != nil && month != nil {
		period = &domain.YearMonth{Year: *year, Month: *month}
	}

	logger = logger.With(slog.String("client_id", clientID))
	report, err := h.reportingService.MonthlyReport(c.Request.Context(), clientID, period)
	if err != nil {
		respondError(c, logger, err, "Failed to generate monthly report")
		return
	}
	logger.Debug("Monthly report generated", slog.Int("sessions", report.SessionCount))
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// getTaxYearReport godoc
// @Summary Tax year summary
// @Description Without tax_year only the available tax years are returned
// @Tags reports
// @Produce json
// @Param client_id query string false "Only this client's activity"
// @Param tax_year query int false "Starting calendar year of the tax year"
// @Success 200 {object} dto.TaxYearReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /api/reports/taxyear [get]
func (h *reportingHandler) getTaxYearReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("client_id")

	taxYear, err := optionalIntQuery(c, "tax_year")
	if err != nil {
		badRequest(c, logger, "tax_year must be a number", err)
		return
	}

	logger = logger.With(slog.String("client_id", clientID))
	report, err := h.reportingService.TaxYearReport(c.Request.Context(), clientID, taxYear)
	if err != nil {
		respondError(c, logger, err, "Failed to generate tax year report")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxYearReportResponse(report))
}

// getMileageAllowance godoc
// @Summary HMRC mileage allowance
// @Description 45p per mile for the first 10,000 miles and 25p per mile after that
// @Tags reports
// @Produce json
// @Param miles query number true "Business miles"
// @Success 200 {object} dto.MileageAllowanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /api/reports/mileage [get]
func (h *reportingHandler) getMileageAllowance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	miles, err := decimal.NewFromString(c.Query("miles"))
	if err != nil {
		badRequest(c, logger, "miles must be a number", err)
		return
	}
	c.JSON(http.StatusOK, dto.MileageAllowanceResponse{Miles: miles, Allowance: domain.MileageAllowance(miles)})
}
