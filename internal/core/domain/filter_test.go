package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestParseSortField_FallsBackToDate(t *testing.T) {
	assert.Equal(t, domain.SortByDate, domain.ParseSortField("data"))
	assert.Equal(t, domain.SortByAmount, domain.ParseSortField("valor"))
	assert.Equal(t, domain.SortByDate, domain.ParseSortField("descricao"))
	assert.Equal(t, domain.SortByDate, domain.ParseSortField("data; DROP TABLE lancamentos"))
	assert.Equal(t, domain.SortByDate, domain.ParseSortField(""))
}

func TestParseSortOrder_FallsBackToDesc(t *testing.T) {
	assert.Equal(t, domain.SortAsc, domain.ParseSortOrder("asc"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortOrder("desc"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortOrder("ASC"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortOrder("random"))
}

func TestTransactionFilter_ScopedToOwner(t *testing.T) {
	admin := domain.TransactionFilter{RequesterRole: domain.RoleAdmin}
	simples := domain.TransactionFilter{RequesterRole: domain.RoleSimples}

	assert.False(t, admin.ScopedToOwner())
	assert.True(t, simples.ScopedToOwner())
}

func TestTransactionFilter_Offset(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{name: "first page", page: 1, limit: 10, want: 0},
		{name: "second page", page: 2, limit: 10, want: 10},
		{name: "fifth page of twenty", page: 5, limit: 20, want: 80},
		{name: "zero page clamps to zero", page: 0, limit: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.TransactionFilter{Page: tt.page, Limit: tt.limit}
			assert.Equal(t, tt.want, f.Offset())
		})
	}
}

func TestTransaction_Signed(t *testing.T) {
	entrada := domain.Transaction{Type: domain.Entrada, Amount: dec(150)}
	saida := domain.Transaction{Type: domain.Saida, Amount: dec(150)}

	assert.True(t, entrada.Signed().Equal(dec(150)))
	assert.True(t, saida.Signed().Equal(dec(-150)))
}
