package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/aozora-dev/blue_return_app/internal/core/ports/services"
	"github.com/aozora-dev/blue_return_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// utf8BOM keeps spreadsheet tools from misreading multibyte account names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportHandler streams period data as CSV downloads.
type exportHandler struct {
	journalService portssvc.JournalSvc
}

// registerExportRoutes registers the CSV export routes.
func registerExportRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvc) {
	h := &exportHandler{journalService: journalService}

	export := rg.Group("/export")
	export.GET("/journal-entries", h.exportJournalEntries)
}

// exportJournalEntries godoc
// @Summary Export journal entries as CSV
// @Description Downloads the entries of a year, optionally narrowed to one month, as a UTF-8 CSV with BOM
// @Tags export
// @Produce  text/csv
// @Param   year query int true "Target year"
// @Param   month query int false "Target month (1-12)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} map[string]string "Invalid period parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to export entries"
// @Security BearerAuth
// @Router /export/journal-entries [get]
func (h *exportHandler) exportJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, err := parseYearMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to list journal entries for export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entries"})
		return
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"date", "debit_account", "debit_amount", "credit_account", "credit_amount", "description"})
	for _, e := range entries {
		_ = w.Write([]string{
			e.Date,
			e.DebitAccountName,
			e.DebitAmount.String(),
			e.CreditAccountName,
			e.CreditAmount.String(),
			e.Description,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export entries"})
		return
	}

	filename := fmt.Sprintf("journal_%04d.csv", year)
	if month != nil {
		filename = fmt.Sprintf("journal_%04d_%02d.csv", year, *month)
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
