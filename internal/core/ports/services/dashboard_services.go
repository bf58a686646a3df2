package services

import (
	"context"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// DashboardSvcFacade computes the period-scoped read model.
type DashboardSvcFacade interface {
	// BuildReport issues the independent aggregates concurrently, joins them
	// and folds the running balance. Any store failure fails the whole
	// report; there is no partial result.
	BuildReport(ctx context.Context, filter domain.TransactionFilter) (*domain.DashboardReport, error)
}

// ExportSvcFacade serializes the filtered transaction set for download.
type ExportSvcFacade interface {
	// BuildCSV renders the filtered, sorted rows as semicolon-delimited text,
	// UTF-8 with byte-order marker, pt-BR number and date formatting.
	BuildCSV(ctx context.Context, filter domain.TransactionFilter) ([]byte, error)

	// BuildPDF renders the same rows as a tabular PDF document.
	BuildPDF(ctx context.Context, filter domain.TransactionFilter) ([]byte, error)
}
