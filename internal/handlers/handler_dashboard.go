package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
	"github.com/rmirandadev06/dashboard-braseiro/internal/middleware"
	"github.com/rmirandadev06/dashboard-braseiro/internal/utils"
	"github.com/rmirandadev06/dashboard-braseiro/pkg/config"
)

// dashboardHandler serves the aggregated read model for the dashboard screen.
type dashboardHandler struct {
	cfg              *config.Config
	dashboardService portssvc.DashboardSvcFacade
	analytics        *utils.PosthogClientWrapper
}

func newDashboardHandler(cfg *config.Config, ds portssvc.DashboardSvcFacade, analytics *utils.PosthogClientWrapper) *dashboardHandler {
	return &dashboardHandler{cfg: cfg, dashboardService: ds, analytics: analytics}
}

// registerDashboardRoutes registers the dashboard aggregate route.
func registerDashboardRoutes(rg *gin.RouterGroup, cfg *config.Config, ds portssvc.DashboardSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newDashboardHandler(cfg, ds, analytics)

	rg.GET("/dados-dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard aggregates
// @Description Returns KPIs, category breakdown, daily cash-flow series and paginated Entrada/Saída tables for the resolved period. Non-admin users only see their own rows.
// @Tags dashboard
// @Produce json
// @Param periodo query string false "Period selector" Enums(today, week, month, custom) default(month)
// @Param dataInicio query string false "Custom period start (YYYY-MM-DD)"
// @Param dataFim query string false "Custom period end (YYYY-MM-DD)"
// @Param tipo query string false "Transaction type filter" Enums(Entrada, Saída, all)
// @Param categoria query string false "Category code filter"
// @Param metodoPagamento query string false "Payment method code filter"
// @Param descricao query string false "Description substring filter"
// @Param valorMin query number false "Minimum amount"
// @Param valorMax query number false "Maximum amount"
// @Param sortBy query string false "Sort field" Enums(data, valor) default(data)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dados-dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, role, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetros da consulta inválidos."})
		return
	}

	filter := query.ToFilter(userID, role, time.Now(), h.cfg.WeekStartDay)

	report, err := h.dashboardService.BuildReport(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to build dashboard report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao carregar dados do dashboard"})
		return
	}

	if h.analytics.IsInitialized() {
		h.analytics.Enqueue(userID, "dashboard_viewed", map[string]interface{}{
			"periodo": query.Periodo,
		})
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(report))
}
