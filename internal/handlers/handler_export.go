package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
	"github.com/rmirandadev06/dashboard-braseiro/internal/middleware"
	"github.com/rmirandadev06/dashboard-braseiro/internal/utils"
	"github.com/rmirandadev06/dashboard-braseiro/pkg/config"
)

// exportHandler streams the filtered transaction set as a downloadable file.
type exportHandler struct {
	cfg           *config.Config
	exportService portssvc.ExportSvcFacade
	analytics     *utils.PosthogClientWrapper
}

func newExportHandler(cfg *config.Config, es portssvc.ExportSvcFacade, analytics *utils.PosthogClientWrapper) *exportHandler {
	return &exportHandler{cfg: cfg, exportService: es, analytics: analytics}
}

// registerExportRoutes registers the CSV and PDF export routes.
func registerExportRoutes(rg *gin.RouterGroup, cfg *config.Config, es portssvc.ExportSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newExportHandler(cfg, es, analytics)

	rg.GET("/exportar", h.exportCSV)
	rg.GET("/exportar/pdf", h.exportPDF)
}

// dashboardFilter pairs the resolved filter with the request fields used
// for analytics events.
type dashboardFilter struct {
	value   domain.TransactionFilter
	userID  string
	periodo string
}

// exportFilter resolves the shared dashboard query into the filter used by
// both export formats. Pagination is ignored; exports carry every row.
func (h *exportHandler) exportFilter(c *gin.Context) (filter dashboardFilter, ok bool) {
	userID, role, found := requesterFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return filter, false
	}

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetros da consulta inválidos."})
		return filter, false
	}

	filter.userID = userID
	filter.periodo = query.Periodo
	filter.value = query.ToFilter(userID, role, time.Now(), h.cfg.WeekStartDay)
	return filter, true
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Description Downloads the filtered transaction set as semicolon-delimited UTF-8 CSV with pt-BR formatting.
// @Tags exportar
// @Produce text/csv
// @Param periodo query string false "Period selector" Enums(today, week, month, custom) default(month)
// @Param dataInicio query string false "Custom period start (YYYY-MM-DD)"
// @Param dataFim query string false "Custom period end (YYYY-MM-DD)"
// @Param tipo query string false "Transaction type filter" Enums(Entrada, Saída, all)
// @Param categoria query string false "Category code filter"
// @Param metodoPagamento query string false "Payment method code filter"
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exportar [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := h.exportFilter(c)
	if !ok {
		return
	}

	payload, err := h.exportService.BuildCSV(c.Request.Context(), filter.value)
	if err != nil {
		logger.Error("Failed to build CSV export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao gerar o export"})
		return
	}

	if h.analytics.IsInitialized() {
		h.analytics.Enqueue(filter.userID, "export_downloaded", map[string]interface{}{
			"formato": "csv",
			"periodo": filter.periodo,
		})
	}

	filename := fmt.Sprintf("export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

// exportPDF godoc
// @Summary Export transactions as PDF
// @Description Downloads the filtered transaction set as a tabular PDF statement.
// @Tags exportar
// @Produce application/pdf
// @Param periodo query string false "Period selector" Enums(today, week, month, custom) default(month)
// @Param dataInicio query string false "Custom period start (YYYY-MM-DD)"
// @Param dataFim query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {string} string "PDF file"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exportar/pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, ok := h.exportFilter(c)
	if !ok {
		return
	}

	payload, err := h.exportService.BuildPDF(c.Request.Context(), filter.value)
	if err != nil {
		logger.Error("Failed to build PDF export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao gerar o export"})
		return
	}

	if h.analytics.IsInitialized() {
		h.analytics.Enqueue(filter.userID, "export_downloaded", map[string]interface{}{
			"formato": "pdf",
			"periodo": filter.periodo,
		})
	}

	filename := fmt.Sprintf("export_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", payload)
}
