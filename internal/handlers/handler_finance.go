package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwira-dev/stockledger/internal/core/domain"
	portssvc "github.com/adiwira-dev/stockledger/internal/core/ports/services"
	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/adiwira-dev/stockledger/internal/middleware"
)

// financeHandler handles HTTP requests for the finance reports.
type financeHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerFinanceRoutes registers the finance report routes.
func registerFinanceRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &financeHandler{reportingService: reportingService}

	finance := rg.Group("/finance")
	{
		finance.GET("/summary", h.getSummary)
		finance.GET("/cashflow", h.getCashflow)
		finance.GET("/trend", h.getTrend)
		finance.GET("/gross-profit", h.getGrossProfit)
		finance.GET("/payments", h.getPaymentBreakdown)
		finance.GET("/top-items", h.getTopItems)
		finance.GET("/statement", h.getStatement)
	}
}

// bindRange binds and parses the shared from/to query parameters, writing
// the error response itself on failure.
func bindRange(c *gin.Context) (domain.DateRange, bool) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return domain.DateRange{}, false
	}
	rng, err := params.ToDateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD or RFC3339"})
		return domain.DateRange{}, false
	}
	return rng, true
}

// getSummary godoc
// @Summary Finance summary
// @Description Returns range totals, net cash, ending balance and the current stock capital.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/summary [get]
func (h *financeHandler) getSummary(c *gin.Context) {
	rng, ok := bindRange(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), rng)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate finance summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate finance summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getCashflow godoc
// @Summary Cashflow by transaction type
// @Description Groups ledger cash movement by originating transaction type.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} domain.CashflowGroup
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/cashflow [get]
func (h *financeHandler) getCashflow(c *gin.Context) {
	rng, ok := bindRange(c)
	if !ok {
		return
	}

	groups, err := h.reportingService.CashflowByType(c.Request.Context(), rng)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate cashflow report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate cashflow report"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// getTrend godoc
// @Summary Ledger trend
// @Description Buckets ledger entries by day, week or month in ascending time order.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param groupBy query string false "Bucket width: day, week or month" default(day)
// @Success 200 {array} domain.TrendPoint
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/trend [get]
func (h *financeHandler) getTrend(c *gin.Context) {
	var params dto.TrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	rng, err := params.ToDateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	points, err := h.reportingService.Trend(c.Request.Context(), domain.TrendGroupBy(params.GroupBy), rng)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate trend report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate trend report"})
		return
	}
	c.JSON(http.StatusOK, points)
}

// getGrossProfit godoc
// @Summary Gross profit
// @Description Aggregates sale revenue against cost of goods sold.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.GrossProfitReport
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/gross-profit [get]
func (h *financeHandler) getGrossProfit(c *gin.Context) {
	rng, ok := bindRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GrossProfit(c.Request.Context(), rng)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate gross profit report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate gross profit report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// getPaymentBreakdown godoc
// @Summary Payment breakdown
// @Description Buckets sales by CASH, TRANSFER or UNPAID.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.PaymentBreakdown
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/payments [get]
func (h *financeHandler) getPaymentBreakdown(c *gin.Context) {
	rng, ok := bindRange(c)
	if !ok {
		return
	}

	breakdown, err := h.reportingService.PaymentBreakdown(c.Request.Context(), rng)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate payment breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate payment breakdown"})
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// getTopItems godoc
// @Summary Top selling items
// @Description Lists best-selling items by revenue.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} domain.TopItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/top-items [get]
func (h *financeHandler) getTopItems(c *gin.Context) {
	var params dto.TopItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	rng, err := params.ToDateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	items, err := h.reportingService.TopItems(c.Request.Context(), rng, params.Limit)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate top items report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate top items report"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// statementQuery binds the statement-specific query parameters.
type statementQuery struct {
	dto.ReportRangeParams
	Query string `form:"q"`
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=20"`
}

// getStatement godoc
// @Summary Ledger statement
// @Description Returns a paginated ascending ledger listing, optionally filtered by description substring.
// @Tags finance
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param q query string false "Description substring filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /finance/statement [get]
func (h *financeHandler) getStatement(c *gin.Context) {
	var params statementQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	rng, err := params.ToDateRange()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	resp, err := h.reportingService.Statement(c.Request.Context(), dto.StatementParams{
		Range: rng,
		Query: params.Query,
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate ledger statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate ledger statement"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
