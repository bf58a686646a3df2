package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/rmirandadev06/dashboard-braseiro/internal/apperrors"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
	"github.com/rmirandadev06/dashboard-braseiro/internal/middleware"
	"github.com/rmirandadev06/dashboard-braseiro/internal/utils"
	"github.com/rmirandadev06/dashboard-braseiro/pkg/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles authentication related requests.
type authHandler struct {
	userService portssvc.UserSvcFacade
	cfg         *config.Config
}

func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: us, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	// 5 attempts per minute per IP on login
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user by email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email e senha são obrigatórios."})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciais inválidas"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao tentar fazer login"})
		return
	}

	token, err := utils.GenerateJWT(user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Usuario: dto.ToUserResponse(user),
	})
}
