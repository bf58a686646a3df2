package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rmirandadev06/dashboard-braseiro/internal/apperrors"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

const entryDateLayout = "2006-01-02"

// buildTransaction validates and canonicalizes a save request.
func (s *transactionService) buildTransaction(req dto.SaveTransactionRequest) (domain.Transaction, error) {
	txnType, ok := domain.ParseTransactionType(req.Tipo)
	if !ok {
		return domain.Transaction{}, apperrors.ErrValidation
	}
	if !req.Valor.IsPositive() {
		return domain.Transaction{}, apperrors.ErrValidation
	}
	date, err := time.Parse(entryDateLayout, req.Data)
	if err != nil {
		return domain.Transaction{}, apperrors.ErrValidation
	}

	return domain.Transaction{
		Type:   txnType,
		Date:   date,
		Amount: req.Valor,
		// Unknown vocabulary codes canonicalize to "other"; they are never
		// rejected.
		Category:      domain.CategoryOrDefault(req.Categoria),
		PaymentMethod: domain.PaymentMethodOrDefault(req.MetodoPagamento),
		Description:   req.Descricao,
	}, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.buildTransaction(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn.TransactionID = uuid.NewString()
	txn.UserID = ownerID
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, requesterID string, requesterRole domain.UserRole, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.buildTransaction(req)
	if err != nil {
		return nil, err
	}

	txn.TransactionID = transactionID
	txn.UpdatedAt = time.Now()

	updated, err := s.transactionRepo.UpdateTransaction(ctx, txn, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, requesterID string, requesterRole domain.UserRole) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, requesterID, requesterRole); err != nil {
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
