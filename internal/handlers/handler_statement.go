package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/aozora-dev/blue_return_app/internal/core/ports/services"
	"github.com/aozora-dev/blue_return_app/internal/dto"
	"github.com/aozora-dev/blue_return_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests for the derived statements. Every
// endpoint recomputes against the current ledger state.
type statementHandler struct {
	statementService portssvc.StatementSvc
}

func newStatementHandler(ss portssvc.StatementSvc) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers routes related to derived statements.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc) {
	h := newStatementHandler(statementService)

	statements := rg.Group("/statements")
	{
		statements.GET("/trial-balance", h.trialBalance)
		statements.GET("/profit-loss", h.profitLoss)
		statements.GET("/balance-sheet", h.balanceSheet)
		statements.GET("/depreciation", h.depreciationSchedule)
		statements.GET("/loss-carryforward", h.lossCarryforwardSummary)
		statements.GET("/monthly-sales-purchases", h.monthlySalesPurchases)
		statements.GET("/final", h.finalStatement)
	}
}

// trialBalance godoc
// @Summary Derive the trial balance
// @Description Derives the trial balance for a year or a single month
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Param   month query int false "Target month (1-12)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive trial balance"
// @Security BearerAuth
// @Router /statements/trial-balance [get]
func (h *statementHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tb, err := h.statementService.TrialBalance(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to derive trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.TrialBalanceResponse{Year: year, Month: month, Trial: *tb})
}

// profitLoss godoc
// @Summary Derive the profit and loss statement
// @Description Derives the full-year profit and loss statement
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Success 200 {object} dto.ProfitLossResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive profit and loss"
// @Security BearerAuth
// @Router /statements/profit-loss [get]
func (h *statementHandler) profitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, _, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pl, err := h.statementService.ProfitLoss(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to derive profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive profit and loss"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfitLossResponse{Year: year, ProfitLoss: *pl})
}

// balanceSheet godoc
// @Summary Derive the balance sheet
// @Description Derives the full-year balance sheet with the current-year result attached
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive balance sheet"
// @Security BearerAuth
// @Router /statements/balance-sheet [get]
func (h *statementHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, _, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bs, err := h.statementService.BalanceSheet(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to derive balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceSheetResponse{Year: year, BalanceSheet: *bs})
}

// depreciationSchedule godoc
// @Summary Derive the depreciation schedule
// @Description Derives the advisory depreciation schedule for a year
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Success 200 {object} dto.DepreciationScheduleResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive depreciation schedule"
// @Security BearerAuth
// @Router /statements/depreciation [get]
func (h *statementHandler) depreciationSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, _, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.statementService.DepreciationSchedule(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to derive depreciation schedule", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive depreciation schedule"})
		return
	}

	c.JSON(http.StatusOK, dto.DepreciationScheduleResponse{Year: year, Rows: rows})
}

// lossCarryforwardSummary godoc
// @Summary Derive the loss-carryforward application
// @Description Proposes how prior-year losses would offset the year's income; nothing is persisted
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Success 200 {object} dto.LossCarryforwardSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive loss application"
// @Security BearerAuth
// @Router /statements/loss-carryforward [get]
func (h *statementHandler) lossCarryforwardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, _, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.statementService.LossCarryforwardSummary(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to derive loss application", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive loss application"})
		return
	}

	c.JSON(http.StatusOK, dto.LossCarryforwardSummaryResponse{Year: year, Summary: *summary})
}

// monthlySalesPurchases godoc
// @Summary Derive the monthly sales and purchases rollup
// @Description Buckets the year's sales and purchases by month; always returns twelve rows
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Success 200 {object} dto.MonthlySalesPurchasesResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive monthly rollup"
// @Security BearerAuth
// @Router /statements/monthly-sales-purchases [get]
func (h *statementHandler) monthlySalesPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, _, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	months, err := h.statementService.MonthlySalesPurchases(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to derive monthly rollup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive monthly rollup"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlySalesPurchasesResponse{Year: year, Months: months})
}

// finalStatement godoc
// @Summary Derive the consolidated annual statement
// @Description Assembles every derived artifact of the filing year into one consistent statement
// @Tags statements
// @Produce  json
// @Param   year query int true "Target year"
// @Success 200 {object} dto.FinalStatementResponse
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to derive final statement"
// @Security BearerAuth
// @Router /statements/final [get]
func (h *statementHandler) finalStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, _, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statement, err := h.statementService.FinalStatement(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to derive final statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive final statement"})
		return
	}

	c.JSON(http.StatusOK, dto.FinalStatementResponse{Year: year, Statement: *statement})
}
