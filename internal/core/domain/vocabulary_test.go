package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Vendas (Salão)", domain.CategorySales.Label())
	assert.Equal(t, "Contas/Boletos", domain.CategoryBills.Label())
	assert.Equal(t, "Outros", domain.Category("no-such-code").Label())
}

func TestParseCategory(t *testing.T) {
	c, ok := domain.ParseCategory("butchery")
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryButchery, c)

	_, ok = domain.ParseCategory("Vendas (Salão)") // labels are not codes
	assert.False(t, ok)

	_, ok = domain.ParseCategory("")
	assert.False(t, ok)
}

func TestCategoryOrDefault(t *testing.T) {
	assert.Equal(t, domain.CategoryTaxes, domain.CategoryOrDefault("taxes"))
	assert.Equal(t, domain.CategoryOther, domain.CategoryOrDefault("weird-legacy-value"))
	assert.Equal(t, domain.CategoryOther, domain.CategoryOrDefault(""))
}

func TestPaymentMethod_Label(t *testing.T) {
	assert.Equal(t, "Cartão + Pix", domain.MethodCardPix.Label())
	assert.Equal(t, "Outro", domain.PaymentMethod("bitcoin").Label())
}

func TestPaymentMethodOrDefault(t *testing.T) {
	assert.Equal(t, domain.MethodPix, domain.PaymentMethodOrDefault("pix"))
	assert.Equal(t, domain.MethodOther, domain.PaymentMethodOrDefault("cheque"))
}

func TestParseTransactionType(t *testing.T) {
	tt, ok := domain.ParseTransactionType("Entrada")
	assert.True(t, ok)
	assert.Equal(t, domain.Entrada, tt)

	tt, ok = domain.ParseTransactionType("Saída")
	assert.True(t, ok)
	assert.Equal(t, domain.Saida, tt)

	// Accent and case matter; there is no fuzzy matching.
	_, ok = domain.ParseTransactionType("Saida")
	assert.False(t, ok)
	_, ok = domain.ParseTransactionType("entrada")
	assert.False(t, ok)
}
