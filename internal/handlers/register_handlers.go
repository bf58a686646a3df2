package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rmirandadev06/dashboard-braseiro/cmd/docs"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/middleware"
	"github.com/rmirandadev06/dashboard-braseiro/internal/utils"
	"github.com/rmirandadev06/dashboard-braseiro/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	// Health check routes
	healthCheck := func(c *gin.Context) {
		c.String(200, "OK")
	}
	r.GET("/", healthCheck)
	r.GET("/health", healthCheck)

	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services, analytics)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerTransactionRoutes(v1, services.Transaction)
	registerDashboardRoutes(v1, cfg, services.Dashboard, analytics)
	registerExportRoutes(v1, cfg, services.Export, analytics)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// requesterFromContext extracts the authenticated identity placed in the
// request context by the auth middleware.
func requesterFromContext(c *gin.Context) (userID string, role domain.UserRole, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		return "", "", false
	}
	role, ok = middleware.GetUserRoleFromContext(c)
	if !ok {
		return "", "", false
	}
	return userID, role, true
}
