package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
)

// dashboardService implements the DashboardSvcFacade interface.
type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repo portsrepo.DashboardRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: repo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// BuildReport issues the independent aggregates concurrently against the
// pooled store, joins them, and folds the daily flows into the running
// balance series. The aggregates share no mutable state; only the fold has a
// true dependency (on the prior balance and the daily series). A failure in
// any query cancels the rest and fails the whole report.
func (s *dashboardService) BuildReport(ctx context.Context, filter domain.TransactionFilter) (*domain.DashboardReport, error) {
	report := &domain.DashboardReport{Period: filter.Period}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.dashboardRepo.GetPeriodTotals(gctx, filter)
		if err != nil {
			return fmt.Errorf("period totals: %w", err)
		}
		report.Totals = totals
		return nil
	})

	var priorBalance decimal.Decimal
	g.Go(func() error {
		saldo, err := s.dashboardRepo.GetPriorBalance(gctx, filter)
		if err != nil {
			return fmt.Errorf("prior balance: %w", err)
		}
		priorBalance = saldo
		return nil
	})

	g.Go(func() error {
		despesas, err := s.dashboardRepo.GetCategoryBreakdown(gctx, filter)
		if err != nil {
			return fmt.Errorf("category breakdown: %w", err)
		}
		report.Despesas = despesas
		return nil
	})

	var dailyFlows []domain.DailyFlow
	g.Go(func() error {
		flows, err := s.dashboardRepo.GetDailyFlows(gctx, filter)
		if err != nil {
			return fmt.Errorf("daily flows: %w", err)
		}
		dailyFlows = flows
		return nil
	})

	g.Go(func() error {
		entradas, err := s.dashboardRepo.FindTransactionsByType(gctx, filter, domain.Entrada)
		if err != nil {
			return fmt.Errorf("entrada rows: %w", err)
		}
		report.Entradas = entradas
		return nil
	})

	g.Go(func() error {
		saidas, err := s.dashboardRepo.FindTransactionsByType(gctx, filter, domain.Saida)
		if err != nil {
			return fmt.Errorf("saida rows: %w", err)
		}
		report.Saidas = saidas
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard aggregates",
			slog.Time("period_start", filter.Period.Start),
			slog.Time("period_end", filter.Period.End))
		return nil, fmt.Errorf("failed to compute dashboard aggregates: %w", err)
	}

	// The fold depends on both the prior balance and the daily series, so it
	// runs after the join. The repository guarantees ascending day order.
	report.PriorBalance = priorBalance
	report.Fluxo = domain.BuildCashFlowSeries(priorBalance, dailyFlows)

	s.LogInfo(ctx, "Dashboard report computed",
		slog.String("period_start", filter.Period.Start.Format(time.RFC3339)),
		slog.String("period_end", filter.Period.End.Format(time.RFC3339)),
		slog.Int("days", len(dailyFlows)),
		slog.Int("categories", len(report.Despesas)))
	return report, nil
}
