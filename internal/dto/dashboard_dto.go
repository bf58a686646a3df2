package dto

import (
	"time"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardQuery enumerates every recognized dashboard/export filter with its
// type and default. Unrecognized values of the optional filters are dropped
// silently; they never produce an error.
type DashboardQuery struct {
	Periodo         string `form:"periodo,default=month"`
	DataInicio      string `form:"dataInicio"`
	DataFim         string `form:"dataFim"`
	Categoria       string `form:"categoria"`
	MetodoPagamento string `form:"metodoPagamento"`
	Tipo            string `form:"tipo"`
	Descricao       string `form:"descricao"`
	ValorMin        string `form:"valorMin"`
	ValorMax        string `form:"valorMax"`
	SortBy          string `form:"sortBy,default=data"`
	SortOrder       string `form:"sortOrder,default=desc"`
	Page            int    `form:"page,default=1"`
	Limit           int    `form:"limit,default=10"`
}

// ToFilter resolves the raw query into the typed predicate set applied to
// every aggregate. The filter is built exactly once per request.
func (q DashboardQuery) ToFilter(requesterID string, requesterRole domain.UserRole, now time.Time, weekStart time.Weekday) domain.TransactionFilter {
	filter := domain.TransactionFilter{
		Period:        domain.ResolvePeriod(domain.PeriodSelector(q.Periodo), q.DataInicio, q.DataFim, now, weekStart),
		RequesterID:   requesterID,
		RequesterRole: requesterRole,
		Description:   q.Descricao,
		SortBy:        domain.ParseSortField(q.SortBy),
		SortOrder:     domain.ParseSortOrder(q.SortOrder),
		Page:          q.Page,
		Limit:         q.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	if q.Tipo != "" && q.Tipo != "all" {
		if t, ok := domain.ParseTransactionType(q.Tipo); ok {
			filter.Type = &t
		}
	}
	if q.Categoria != "" && q.Categoria != "all" {
		if c, ok := domain.ParseCategory(q.Categoria); ok {
			filter.Category = &c
		}
	}
	if q.MetodoPagamento != "" && q.MetodoPagamento != "all" {
		if m, ok := domain.ParsePaymentMethod(q.MetodoPagamento); ok {
			filter.PaymentMethod = &m
		}
	}
	if q.ValorMin != "" {
		if min, err := decimal.NewFromString(q.ValorMin); err == nil {
			filter.MinAmount = &min
		}
	}
	if q.ValorMax != "" {
		if max, err := decimal.NewFromString(q.ValorMax); err == nil {
			filter.MaxAmount = &max
		}
	}
	return filter
}

// KPIsResponse carries the headline numbers of the dashboard.
type KPIsResponse struct {
	TotalEntradas float64 `json:"totalEntradas"`
	TotalSaidas   float64 `json:"totalSaidas"`
	SaldoPeriodo  float64 `json:"saldoPeriodo"`
	MargemLucro   float64 `json:"margemLucro"`
	SaldoAnterior float64 `json:"saldoAnterior"`
	SaldoAtual    float64 `json:"saldoAtual"`
}

// DespesasResponse carries the category breakdown as parallel arrays sharing
// one ordering.
type DespesasResponse struct {
	Labels  []string  `json:"labels"`
	Valores []float64 `json:"valores"`
}

// FluxoCaixaResponse carries the per-day cash-flow chart series.
type FluxoCaixaResponse struct {
	Labels                []string  `json:"labels"`
	ValoresEntradas       []float64 `json:"valoresEntradas"`
	ValoresSaidas         []float64 `json:"valoresSaidas"`
	ValoresSaldoAcumulado []float64 `json:"valoresSaldoAcumulado"`
}

// PaginacaoResponse carries pagination metadata for one table.
type PaginacaoResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// TabelasResponse carries the two independently paginated row sets.
type TabelasResponse struct {
	UltimasEntradas   []TransactionResponse `json:"ultimasEntradas"`
	UltimasSaidas     []TransactionResponse `json:"ultimasSaidas"`
	PaginacaoEntradas PaginacaoResponse     `json:"paginacaoEntradas"`
	PaginacaoSaidas   PaginacaoResponse     `json:"paginacaoSaidas"`
}

// DashboardResponse is the complete dashboard payload.
type DashboardResponse struct {
	KPIs              KPIsResponse       `json:"kpis"`
	Despesas          DespesasResponse   `json:"despesas"`
	GraficoFluxoCaixa FluxoCaixaResponse `json:"graficoFluxoCaixa"`
	Tabelas           TabelasResponse    `json:"tabelas"`
}

// ToDashboardResponse shapes the joined aggregates into the output contract.
// This is the only place monetary decimals become floats.
func ToDashboardResponse(report *domain.DashboardReport) DashboardResponse {
	despesas := DespesasResponse{
		Labels:  make([]string, len(report.Despesas)),
		Valores: make([]float64, len(report.Despesas)),
	}
	for i, d := range report.Despesas {
		despesas.Labels[i] = d.Category.Label()
		despesas.Valores[i] = d.Total.InexactFloat64()
	}

	fluxo := FluxoCaixaResponse{
		Labels:                report.Fluxo.Labels,
		ValoresEntradas:       toFloatSlice(report.Fluxo.Entradas),
		ValoresSaidas:         toFloatSlice(report.Fluxo.Saidas),
		ValoresSaldoAcumulado: toFloatSlice(report.Fluxo.SaldoAcumulado),
	}

	return DashboardResponse{
		KPIs: KPIsResponse{
			TotalEntradas: report.Totals.TotalEntradas.InexactFloat64(),
			TotalSaidas:   report.Totals.TotalSaidas.InexactFloat64(),
			SaldoPeriodo:  report.SaldoPeriodo().InexactFloat64(),
			MargemLucro:   report.MargemLucro().InexactFloat64(),
			SaldoAnterior: report.PriorBalance.InexactFloat64(),
			SaldoAtual:    report.SaldoAtual().InexactFloat64(),
		},
		Despesas:          despesas,
		GraficoFluxoCaixa: fluxo,
		Tabelas: TabelasResponse{
			UltimasEntradas: ToTransactionResponseList(report.Entradas.Rows),
			UltimasSaidas:   ToTransactionResponseList(report.Saidas.Rows),
			PaginacaoEntradas: PaginacaoResponse{
				Total: report.Entradas.Total,
				Page:  report.Entradas.Page,
				Limit: report.Entradas.Limit,
			},
			PaginacaoSaidas: PaginacaoResponse{
				Total: report.Saidas.Total,
				Page:  report.Saidas.Page,
				Limit: report.Saidas.Limit,
			},
		},
	}
}

func toFloatSlice(values []decimal.Decimal) []float64 {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = v.InexactFloat64()
	}
	return floats
}
