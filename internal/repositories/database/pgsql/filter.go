package pgsql

import (
	"fmt"
	"strings"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// queryFilter is a compiled, reusable WHERE fragment. It is built once from a
// domain.TransactionFilter and cloned for every aggregate query, so the same
// predicate set is applied identically whether computing KPIs, the category
// breakdown or paginated rows.
type queryFilter struct {
	conds []string
	args  []any
}

// and appends a condition. expr must contain exactly one %d verb, which is
// replaced with the positional index of the appended argument.
func (q *queryFilter) and(expr string, arg any) *queryFilter {
	q.args = append(q.args, arg)
	q.conds = append(q.conds, fmt.Sprintf(expr, len(q.args)))
	return q
}

// clone copies the filter so per-query conditions never leak back into the
// shared base.
func (q *queryFilter) clone() *queryFilter {
	c := &queryFilter{
		conds: make([]string, len(q.conds), len(q.conds)+2),
		args:  make([]any, len(q.args), len(q.args)+2),
	}
	copy(c.conds, q.conds)
	copy(c.args, q.args)
	return c
}

// where renders the fragment, always non-empty because the period bounds are
// unconditional.
func (q *queryFilter) where() string {
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// compileFilter translates the resolved filter into SQL conditions over the
// lancamentos table.
func compileFilter(f domain.TransactionFilter) *queryFilter {
	q := &queryFilter{}
	q.and("data >= $%d", f.Period.Start)
	q.and("data <= $%d", f.Period.End)
	if f.ScopedToOwner() {
		q.and("user_id = $%d", f.RequesterID)
	}
	if f.Type != nil {
		q.and("tipo = $%d", string(*f.Type))
	}
	if f.Category != nil {
		q.and("categoria = $%d", string(*f.Category))
	}
	if f.PaymentMethod != nil {
		q.and("metodo_pagamento = $%d", string(*f.PaymentMethod))
	}
	if f.Description != "" {
		q.and("descricao ILIKE '%%' || $%d || '%%'", f.Description)
	}
	if f.MinAmount != nil {
		q.and("valor >= $%d", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q.and("valor <= $%d", *f.MaxAmount)
	}
	return q
}

// compilePriorBalanceFilter keeps only role scoping and the "strictly before
// the period" bound: the carried-forward balance reflects cumulative history,
// not the visible filters.
func compilePriorBalanceFilter(f domain.TransactionFilter) *queryFilter {
	q := &queryFilter{}
	q.and("data < $%d", f.Period.Start)
	if f.ScopedToOwner() {
		q.and("user_id = $%d", f.RequesterID)
	}
	return q
}

// orderBy renders the validated sort. SortField and SortOrder come from a
// typed allow-list, never from raw user input.
func orderBy(f domain.TransactionFilter) string {
	return fmt.Sprintf(" ORDER BY %s %s", string(f.SortBy), strings.ToUpper(string(f.SortOrder)))
}
