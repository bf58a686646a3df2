package repositories

import (
	"context"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines the read-only aggregate queries behind the
// dashboard. All methods apply the same filter; they have no ordering
// dependency on one another and may be issued concurrently.
type DashboardRepository interface {
	// GetPeriodTotals sums amounts by type over the filtered period set.
	GetPeriodTotals(ctx context.Context, filter domain.TransactionFilter) (domain.PeriodTotals, error)

	// GetPriorBalance sums the signed amounts of all transactions strictly
	// before the period start. Only role scoping applies; category, method,
	// description and amount filters are deliberately ignored so the carried
	// balance reflects cumulative history.
	GetPriorBalance(ctx context.Context, filter domain.TransactionFilter) (decimal.Decimal, error)

	// GetCategoryBreakdown sums outflow amounts grouped by category over the
	// filtered set, ordered descending by sum.
	GetCategoryBreakdown(ctx context.Context, filter domain.TransactionFilter) ([]domain.CategoryTotal, error)

	// GetDailyFlows sums amounts by type grouped by truncated day over the
	// filtered set, ordered ascending by day.
	GetDailyFlows(ctx context.Context, filter domain.TransactionFilter) ([]domain.DailyFlow, error)

	// FindTransactionsByType returns one paginated, sorted row set restricted
	// to the given type, plus the total row count for pagination metadata.
	FindTransactionsByType(ctx context.Context, filter domain.TransactionFilter, txnType domain.TransactionType) (domain.PaginatedTransactions, error)

	// FindTransactionsForExport returns the full filtered, sorted row set
	// without pagination.
	FindTransactionsForExport(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}
