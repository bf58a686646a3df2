package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyFlow is the aggregated inflow/outflow of one calendar day.
type DailyFlow struct {
	Day      time.Time
	Entradas decimal.Decimal
	Saidas   decimal.Decimal
}

// Net returns inflow minus outflow for the day.
func (d DailyFlow) Net() decimal.Decimal {
	return d.Entradas.Sub(d.Saidas)
}

// CategoryTotal is the outflow sum of one category within the period.
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
}

// PeriodTotals are the filtered inflow/outflow sums of the period.
type PeriodTotals struct {
	TotalEntradas decimal.Decimal
	TotalSaidas   decimal.Decimal
}

// CashFlowSeries holds the aligned per-day sequences of the cash-flow chart.
// All four slices always have equal length.
type CashFlowSeries struct {
	Labels         []string
	Entradas       []decimal.Decimal
	Saidas         []decimal.Decimal
	SaldoAcumulado []decimal.Decimal
}

// dayLabelLayout renders day labels in the pt-BR DD/MM convention.
const dayLabelLayout = "02/01"

// BuildCashFlowSeries folds a pre-sorted (ascending by day) daily flow
// sequence into cumulative balances seeded by the balance carried forward.
// Labels are formatted from the canonical day value, not from any display
// string, so timezone drift cannot desynchronize label and value.
func BuildCashFlowSeries(priorBalance decimal.Decimal, days []DailyFlow) CashFlowSeries {
	series := CashFlowSeries{
		Labels:         make([]string, 0, len(days)),
		Entradas:       make([]decimal.Decimal, 0, len(days)),
		Saidas:         make([]decimal.Decimal, 0, len(days)),
		SaldoAcumulado: make([]decimal.Decimal, 0, len(days)),
	}

	saldo := priorBalance
	for _, day := range days {
		saldo = saldo.Add(day.Net())
		series.Labels = append(series.Labels, day.Day.Format(dayLabelLayout))
		series.Entradas = append(series.Entradas, day.Entradas)
		series.Saidas = append(series.Saidas, day.Saidas)
		series.SaldoAcumulado = append(series.SaldoAcumulado, saldo)
	}
	return series
}

// PaginatedTransactions is one independently paginated, independently sorted
// row set plus its pagination metadata.
type PaginatedTransactions struct {
	Rows  []Transaction
	Total int64
	Page  int
	Limit int
}

// DashboardReport is the joined result of all dashboard aggregates for one
// request. It exists only for the duration of one request/response cycle.
type DashboardReport struct {
	Period       Period
	Totals       PeriodTotals
	PriorBalance decimal.Decimal
	Despesas     []CategoryTotal
	Fluxo        CashFlowSeries
	Entradas     PaginatedTransactions
	Saidas       PaginatedTransactions
}

// SaldoPeriodo returns inflow minus outflow within the period.
func (r DashboardReport) SaldoPeriodo() decimal.Decimal {
	return r.Totals.TotalEntradas.Sub(r.Totals.TotalSaidas)
}

// SaldoAtual returns the prior balance plus the period net.
func (r DashboardReport) SaldoAtual() decimal.Decimal {
	return r.PriorBalance.Add(r.SaldoPeriodo())
}

// MargemLucro returns period net over total inflow, or zero when the period
// had no inflow.
func (r DashboardReport) MargemLucro() decimal.Decimal {
	if r.Totals.TotalEntradas.IsZero() {
		return decimal.Zero
	}
	return r.SaldoPeriodo().Div(r.Totals.TotalEntradas)
}
