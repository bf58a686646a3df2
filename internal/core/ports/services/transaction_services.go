package services

import (
	"context"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
)

// TransactionSvcFacade defines the ledger entry operations exposed to handlers.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, ownerID string, req dto.SaveTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction mutates an entry. Non-admin requesters may only touch
	// their own rows; a row owned by someone else surfaces as ErrNotFound.
	UpdateTransaction(ctx context.Context, transactionID string, requesterID string, requesterRole domain.UserRole, req dto.SaveTransactionRequest) (*domain.Transaction, error)

	DeleteTransaction(ctx context.Context, transactionID string, requesterID string, requesterRole domain.UserRole) error
}
