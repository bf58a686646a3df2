package repositories

import (
	"context"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger entries.
// Mutations carry the requester's identity and role so that non-admins can
// only touch their own rows; the scoping is applied in the store, not after.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction, requesterID string, requesterRole domain.UserRole) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string, requesterID string, requesterRole domain.UserRole) error
}
