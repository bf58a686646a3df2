package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmirandadev06/dashboard-braseiro/internal/apperrors"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
	"github.com/rmirandadev06/dashboard-braseiro/internal/middleware"
)

// transactionHandler handles HTTP requests for ledger transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers all transaction CRUD routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	lancamentos := rg.Group("/lancamentos")
	{
		lancamentos.POST("", h.createTransaction)
		lancamentos.PUT("/:id", h.updateTransaction)
		lancamentos.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a new Entrada or Saída owned by the logged-in user.
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param transaction body dto.SaveTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /lancamentos [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, _, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Todos os campos são obrigatórios."})
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados do lançamento inválidos."})
			return
		}
		logger.Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao salvar lançamento"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates a transaction. Non-admin users can only touch their own rows.
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.SaveTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /lancamentos/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, role, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SaveTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Todos os campos são obrigatórios."})
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), userID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados do lançamento inválidos."})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lançamento não encontrado ou acesso negado."})
		default:
			logger.Error("Failed to update transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao atualizar lançamento"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction. Non-admin users can only touch their own rows.
// @Tags lancamentos
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /lancamentos/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, role, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lançamento não encontrado ou acesso negado."})
			return
		}
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Erro interno ao deletar lançamento"})
		return
	}

	c.Status(http.StatusNoContent)
}
