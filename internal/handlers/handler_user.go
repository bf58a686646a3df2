package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmirandadev06/dashboard-braseiro/internal/apperrors"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
	"github.com/rmirandadev06/dashboard-braseiro/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers all user management routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	usuarios := rg.Group("/usuarios")
	{
		usuarios.POST("", h.registerUser)                  // Admin only
		usuarios.GET("", h.listUsers)                      // Admin only
		usuarios.PUT("/:id", h.updateUser)                 // Admin only
		usuarios.DELETE("/:id", h.deleteUser)              // Admin only
		usuarios.POST("/:id/reset-senha", h.resetPassword) // Admin only
	}

	perfil := rg.Group("/perfil")
	{
		perfil.POST("/alterar-senha", h.changeOwnPassword)
	}
}

// requireAdmin aborts the request unless the requester carries the admin
// role, returning the requester ID when allowed.
func requireAdmin(c *gin.Context) (string, bool) {
	userID, role, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	if role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Acesso negado."})
		return "", false
	}
	return userID, true
}

// registerUser godoc
// @Summary Register a new user
// @Description Creates a new user account with the "simples" role. Admin only.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios [post]
func (h *userHandler) registerUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nome, email e senha são obrigatórios."})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Este email já está em uso."})
			return
		}
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao registrar usuário"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// listUsers godoc
// @Summary List users
// @Description Retrieves all users ordered by creation date. Admin only.
// @Tags usuarios
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := requireAdmin(c); !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao buscar usuários"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponseList(users))
}

// updateUser godoc
// @Summary Update a user
// @Description Updates name, email and role of a user. Admin only.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "User details"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Nome, email e role são obrigatórios."})
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Usuário não encontrado."})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Este email já está em uso por outra conta."})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: `Role inválida. Use "admin" ou "simples".`})
		default:
			logger.Error("Failed to update user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao atualizar usuário"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes a user account. Admins cannot delete their own account. Admin only.
// @Tags usuarios
// @Param id path string true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requesterID, ok := requireAdmin(c)
	if !ok {
		return
	}

	err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), requesterID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Ação negada. Você não pode deletar sua própria conta de administrador."})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Usuário não encontrado."})
		default:
			logger.Error("Failed to delete user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao deletar usuário"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// resetPassword godoc
// @Summary Reset a user's password
// @Description Sets a new password for a user without checking the old one. Admin only.
// @Tags usuarios
// @Accept json
// @Param id path string true "User ID"
// @Param request body dto.AdminResetPasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /usuarios/{id}/reset-senha [post]
func (h *userHandler) resetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := requireAdmin(c); !ok {
		return
	}

	var req dto.AdminResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A nova senha é obrigatória."})
		return
	}

	err := h.userService.ResetPassword(c.Request.Context(), c.Param("id"), req.NovaSenha)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Usuário não encontrado."})
			return
		}
		logger.Error("Failed to reset password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao resetar senha"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha do usuário atualizada com sucesso."})
}

// changeOwnPassword godoc
// @Summary Change own password
// @Description Changes the password of the logged-in user after verifying the current one.
// @Tags perfil
// @Accept json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /perfil/alterar-senha [post]
func (h *userHandler) changeOwnPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A senha atual e a nova senha são obrigatórias."})
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), userID, req.SenhaAtual, req.NovaSenha)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: `A "Senha Atual" está incorreta.`})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Usuário não encontrado."})
		default:
			logger.Error("Failed to change password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao alterar a senha."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso! Faça o login novamente."})
}
