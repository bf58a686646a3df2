package pgsql

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

func baseFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Period: domain.Period{
			Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC),
		},
		RequesterID:   "user-1",
		RequesterRole: domain.RoleAdmin,
		SortBy:        domain.SortByDate,
		SortOrder:     domain.SortDesc,
	}
}

func TestCompileFilter_AdminPeriodOnly(t *testing.T) {
	q := compileFilter(baseFilter())

	assert.Equal(t, " WHERE data >= $1 AND data <= $2", q.where())
	assert.Len(t, q.args, 2)
}

func TestCompileFilter_RoleScoping(t *testing.T) {
	f := baseFilter()
	f.RequesterRole = domain.RoleSimples

	q := compileFilter(f)

	assert.Contains(t, q.where(), "user_id = $3")
	assert.Equal(t, "user-1", q.args[2])
}

func TestCompileFilter_AllConditions(t *testing.T) {
	f := baseFilter()
	f.RequesterRole = domain.RoleSimples
	tipo := domain.Saida
	categoria := domain.CategoryMarket
	metodo := domain.MethodPix
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(500)
	f.Type = &tipo
	f.Category = &categoria
	f.PaymentMethod = &metodo
	f.Description = "fornecedor"
	f.MinAmount = &min
	f.MaxAmount = &max

	q := compileFilter(f)

	where := q.where()
	assert.Contains(t, where, "tipo = $4")
	assert.Contains(t, where, "categoria = $5")
	assert.Contains(t, where, "metodo_pagamento = $6")
	assert.Contains(t, where, "descricao ILIKE '%' || $7 || '%'")
	assert.Contains(t, where, "valor >= $8")
	assert.Contains(t, where, "valor <= $9")
	require.Len(t, q.args, 9)
	assert.Equal(t, "Saída", q.args[3])
	assert.Equal(t, "fornecedor", q.args[6])
}

func TestCompileFilter_CloneDoesNotLeak(t *testing.T) {
	base := compileFilter(baseFilter())
	before := base.where()

	c := base.clone()
	c.and("tipo = $%d", "Entrada")

	assert.Equal(t, before, base.where())
	assert.Contains(t, c.where(), "tipo = $3")
	assert.Len(t, base.args, 2)
	assert.Len(t, c.args, 3)
}

func TestCompilePriorBalanceFilter_IgnoresVisibleFilters(t *testing.T) {
	f := baseFilter()
	f.RequesterRole = domain.RoleSimples
	tipo := domain.Saida
	f.Type = &tipo
	f.Description = "fornecedor"

	q := compilePriorBalanceFilter(f)

	// Only the strict period bound and role scoping survive.
	assert.Equal(t, " WHERE data < $1 AND user_id = $2", q.where())
	assert.Equal(t, f.Period.Start, q.args[0])
	assert.Equal(t, "user-1", q.args[1])
}

func TestCompilePriorBalanceFilter_AdminUnscoped(t *testing.T) {
	q := compilePriorBalanceFilter(baseFilter())

	assert.Equal(t, " WHERE data < $1", q.where())
}

func TestOrderBy(t *testing.T) {
	f := baseFilter()
	assert.Equal(t, " ORDER BY data DESC", orderBy(f))

	f.SortBy = domain.SortByAmount
	f.SortOrder = domain.SortAsc
	assert.Equal(t, " ORDER BY valor ASC", orderBy(f))
}
