package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
)

// exportService implements the ExportSvcFacade interface.
type exportService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
}

// NewExportService creates a new export service.
func NewExportService(repo portsrepo.DashboardRepository) portssvc.ExportSvcFacade {
	return &exportService{dashboardRepo: repo}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

const (
	csvDelimiter     = ";"
	exportDateLayout = "02/01/2006"
)

var csvHeader = []string{"ID", "Data", "Tipo", "Descricao", "Categoria", "Metodo", "Valor"}

// escapeCSV wraps a value in quotes, doubling embedded quotes, when it
// contains the delimiter, a quote or a newline.
func escapeCSV(value string) string {
	if strings.ContainsAny(value, csvDelimiter+"\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// formatValorBR renders an amount with two decimals and comma as the decimal
// separator.
func formatValorBR(amount decimal.Decimal) string {
	return strings.ReplaceAll(amount.StringFixed(2), ".", ",")
}

// BuildCSV renders the filtered, sorted transactions as semicolon-delimited
// text. The output is UTF-8 with a byte-order marker so spreadsheet tools
// pick the encoding up correctly.
func (s *exportService) BuildCSV(ctx context.Context, filter domain.TransactionFilter) ([]byte, error) {
	txns, err := s.dashboardRepo.FindTransactionsForExport(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rows for CSV export")
		return nil, fmt.Errorf("failed to build CSV export: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	buf.WriteString(strings.Join(csvHeader, csvDelimiter))
	buf.WriteString("\n")

	lines := make([]string, len(txns))
	for i, txn := range txns {
		fields := []string{
			txn.TransactionID,
			txn.Date.Format(exportDateLayout),
			escapeCSV(string(txn.Type)),
			escapeCSV(txn.Description),
			escapeCSV(txn.Category.Label()),
			escapeCSV(txn.PaymentMethod.Label()),
			formatValorBR(txn.Amount),
		}
		lines[i] = strings.Join(fields, csvDelimiter)
	}
	buf.WriteString(strings.Join(lines, "\n"))

	s.LogInfo(ctx, "CSV export built", slog.Int("rows", len(txns)))
	return buf.Bytes(), nil
}

// BuildPDF renders the same filtered rows as a tabular PDF document.
func (s *exportService) BuildPDF(ctx context.Context, filter domain.TransactionFilter) ([]byte, error) {
	txns, err := s.dashboardRepo.FindTransactionsForExport(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch rows for PDF export")
		return nil, fmt.Errorf("failed to build PDF export: %w", err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Extrato de Lançamentos"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s - %s",
		filter.Period.Start.Format(exportDateLayout),
		filter.Period.End.Format(exportDateLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{28, 22, 90, 40, 35, 30}
	headers := []string{"Data", "Tipo", "Descrição", "Categoria", "Método", "Valor"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, txn := range txns {
		pdf.CellFormat(colWidths[0], 6, txn.Date.Format(exportDateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, tr(string(txn.Type)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, tr(txn.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, tr(txn.Category.Label()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[4], 6, tr(txn.PaymentMethod.Label()), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[5], 6, formatValorBR(txn.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.LogError(ctx, err, "Failed to render PDF export")
		return nil, fmt.Errorf("failed to render PDF export: %w", err)
	}

	s.LogInfo(ctx, "PDF export built", slog.Int("rows", len(txns)))
	return buf.Bytes(), nil
}
