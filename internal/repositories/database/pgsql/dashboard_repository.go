package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	"github.com/rmirandadev06/dashboard-braseiro/internal/models"
)

// dashboardRepository implements the DashboardRepository interface.
type dashboardRepository struct {
	BaseRepository
}

func newDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepository {
	return &dashboardRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.DashboardRepository = (*dashboardRepository)(nil)

const transactionColumns = "transaction_id, user_id, tipo, data, valor, descricao, categoria, metodo_pagamento, created_at, updated_at"

// GetPeriodTotals sums amounts by type over the filtered period set.
func (r *dashboardRepository) GetPeriodTotals(ctx context.Context, filter domain.TransactionFilter) (domain.PeriodTotals, error) {
	q := compileFilter(filter)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN tipo = 'Entrada' THEN valor ELSE 0 END), 0) AS total_entradas,
			COALESCE(SUM(CASE WHEN tipo = 'Saída' THEN valor ELSE 0 END), 0) AS total_saidas
		FROM lancamentos` + q.where()

	var totals domain.PeriodTotals
	err := r.Pool.QueryRow(ctx, query, q.args...).Scan(&totals.TotalEntradas, &totals.TotalSaidas)
	if err != nil {
		return domain.PeriodTotals{}, fmt.Errorf("error querying period totals: %w", err)
	}
	return totals, nil
}

// GetPriorBalance sums the signed amounts of everything strictly before the
// period start, respecting role scoping only.
func (r *dashboardRepository) GetPriorBalance(ctx context.Context, filter domain.TransactionFilter) (decimal.Decimal, error) {
	q := compilePriorBalanceFilter(filter)
	query := `
		SELECT COALESCE(SUM(CASE WHEN tipo = 'Entrada' THEN valor ELSE -valor END), 0) AS saldo
		FROM lancamentos` + q.where()

	var saldo decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, q.args...).Scan(&saldo); err != nil {
		return decimal.Zero, fmt.Errorf("error querying prior balance: %w", err)
	}
	return saldo, nil
}

// GetCategoryBreakdown sums outflow amounts grouped by category, descending.
func (r *dashboardRepository) GetCategoryBreakdown(ctx context.Context, filter domain.TransactionFilter) ([]domain.CategoryTotal, error) {
	q := compileFilter(filter).and("tipo = $%d", string(domain.Saida))
	query := `
		SELECT categoria, SUM(valor) AS total
		FROM lancamentos` + q.where() + `
		GROUP BY categoria
		ORDER BY total DESC`

	rows, err := r.Pool.Query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category breakdown: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var categoria string
		var total decimal.Decimal
		if err := rows.Scan(&categoria, &total); err != nil {
			return nil, fmt.Errorf("error scanning category breakdown row: %w", err)
		}
		result = append(result, domain.CategoryTotal{
			Category: domain.Category(categoria),
			Total:    total,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category breakdown rows: %w", err)
	}
	return result, nil
}

// GetDailyFlows sums amounts by type grouped by truncated day, ascending.
func (r *dashboardRepository) GetDailyFlows(ctx context.Context, filter domain.TransactionFilter) ([]domain.DailyFlow, error) {
	q := compileFilter(filter)
	query := `
		SELECT
			DATE_TRUNC('day', data) AS dia,
			COALESCE(SUM(CASE WHEN tipo = 'Entrada' THEN valor ELSE 0 END), 0) AS entradas,
			COALESCE(SUM(CASE WHEN tipo = 'Saída' THEN valor ELSE 0 END), 0) AS saidas
		FROM lancamentos` + q.where() + `
		GROUP BY dia
		ORDER BY dia ASC`

	rows, err := r.Pool.Query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying daily flows: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyFlow{}
	for rows.Next() {
		var flow domain.DailyFlow
		if err := rows.Scan(&flow.Day, &flow.Entradas, &flow.Saidas); err != nil {
			return nil, fmt.Errorf("error scanning daily flow row: %w", err)
		}
		result = append(result, flow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily flow rows: %w", err)
	}
	return result, nil
}

// FindTransactionsByType returns one paginated, sorted row set restricted to
// the given type plus its total count.
func (r *dashboardRepository) FindTransactionsByType(ctx context.Context, filter domain.TransactionFilter, txnType domain.TransactionType) (domain.PaginatedTransactions, error) {
	q := compileFilter(filter).and("tipo = $%d", string(txnType))

	var total int64
	countQuery := "SELECT COUNT(*) FROM lancamentos" + q.where()
	if err := r.Pool.QueryRow(ctx, countQuery, q.args...).Scan(&total); err != nil {
		return domain.PaginatedTransactions{}, fmt.Errorf("error counting %s rows: %w", txnType, err)
	}

	pageQuery := fmt.Sprintf(
		"SELECT %s FROM lancamentos%s%s LIMIT $%d OFFSET $%d",
		transactionColumns, q.where(), orderBy(filter), len(q.args)+1, len(q.args)+2,
	)
	args := append(q.clone().args, filter.Limit, filter.Offset())

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return domain.PaginatedTransactions{}, fmt.Errorf("error querying %s rows: %w", txnType, err)
	}
	defer rows.Close()

	txns, err := scanTransactions(rows)
	if err != nil {
		return domain.PaginatedTransactions{}, err
	}

	return domain.PaginatedTransactions{
		Rows:  txns,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// FindTransactionsForExport returns the full filtered, sorted row set.
func (r *dashboardRepository) FindTransactionsForExport(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	q := compileFilter(filter)
	query := "SELECT " + transactionColumns + " FROM lancamentos" + q.where() + orderBy(filter)

	rows, err := r.Pool.Query(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying export rows: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// scanTransactions drains a transaction row set into domain objects.
func scanTransactions(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
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
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
