package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmirandadev06/dashboard-braseiro/internal/apperrors"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	"github.com/rmirandadev06/dashboard-braseiro/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Date:          d.Date,
		Amount:        d.Amount,
		Description:   d.Description,
		Category:      string(d.Category),
		PaymentMethod: string(d.PaymentMethod),
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Date:          m.Date,
		Amount:        m.Amount,
		Description:   m.Description,
		Category:      domain.Category(m.Category),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
		INSERT INTO lancamentos (transaction_id, user_id, tipo, data, valor, descricao, categoria, metodo_pagamento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Type,
		m.Date,
		m.Amount,
		m.Description,
		m.Category,
		m.PaymentMethod,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM lancamentos WHERE transaction_id = $1;"

	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Type,
		&m.Date,
		&m.Amount,
		&m.Description,
		&m.Category,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m)
	return &d, nil
}

// UpdateTransaction mutates a row in place. The ownership condition lives in
// the statement itself so a non-admin can never update someone else's row;
// such an attempt reports ErrNotFound, indistinguishable from a missing row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, requesterID string, requesterRole domain.UserRole) (*domain.Transaction, error) {
	m := toModelTransaction(txn)
	query := `
		UPDATE lancamentos
		SET tipo = $1, data = $2, valor = $3, descricao = $4, categoria = $5, metodo_pagamento = $6, updated_at = $7
		WHERE transaction_id = $8 AND ($9 OR user_id = $10)
		RETURNING ` + transactionColumns + `;
	`
	var updated models.Transaction
	err := r.Pool.QueryRow(ctx, query,
		m.Type,
		m.Date,
		m.Amount,
		m.Description,
		m.Category,
		m.PaymentMethod,
		m.UpdatedAt,
		m.TransactionID,
		requesterRole == domain.RoleAdmin,
		requesterID,
	).Scan(
		&updated.TransactionID,
		&updated.UserID,
		&updated.Type,
		&updated.Date,
		&updated.Amount,
		&updated.Description,
		&updated.Category,
		&updated.PaymentMethod,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}

	d := toDomainTransaction(updated)
	return &d, nil
}

// DeleteTransaction removes a row, applying the same in-statement ownership
// scoping as UpdateTransaction.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, requesterID string, requesterRole domain.UserRole) error {
	query := `
		DELETE FROM lancamentos
		WHERE transaction_id = $1 AND ($2 OR user_id = $3);
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, requesterRole == domain.RoleAdmin, requesterID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
