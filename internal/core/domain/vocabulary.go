package domain

// Category is the canonical code of a transaction category.
// The store keeps canonical codes; display labels exist only at the
// response/export boundary.
type Category string

const (
	CategorySales       Category = "sales"
	CategoryExtra       Category = "extra"
	CategoryMarket      Category = "market"
	CategoryPurchases   Category = "purchases"
	CategoryStaff       Category = "staff"
	CategoryUtilities   Category = "utilities"
	CategoryMaintenance Category = "maintenance"
	CategoryTaxes       Category = "taxes"
	CategoryInvestments Category = "investments"
	CategoryButchery    Category = "butchery"
	CategoryBills       Category = "bills"
	CategoryOther       Category = "other"
)

var categoryLabels = map[Category]string{
	CategorySales:       "Vendas (Salão)",
	CategoryExtra:       "Recebíveis Extras",
	CategoryMarket:      "Mercado",
	CategoryPurchases:   "Compras",
	CategoryStaff:       "Pessoal",
	CategoryUtilities:   "Utilidades",
	CategoryMaintenance: "Manutenção",
	CategoryTaxes:       "Impostos",
	CategoryInvestments: "Investimentos",
	CategoryButchery:    "Açougue",
	CategoryBills:       "Contas/Boletos",
	CategoryOther:       "Outros",
}

// Label returns the Portuguese display label for the category.
// Unknown codes fall back to the "Outros" label.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// ParseCategory validates a raw category code against the canonical vocabulary.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	_, ok := categoryLabels[c]
	return c, ok
}

// CategoryOrDefault canonicalizes a raw code, falling back to CategoryOther.
func CategoryOrDefault(raw string) Category {
	if c, ok := ParseCategory(raw); ok {
		return c
	}
	return CategoryOther
}

// PaymentMethod is the canonical code of a payment method.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodPix      PaymentMethod = "pix"
	MethodTransfer PaymentMethod = "transfer"
	MethodBill     PaymentMethod = "bill"
	MethodCardPix  PaymentMethod = "card-pix"
	MethodOther    PaymentMethod = "other"
)

var paymentMethodLabels = map[PaymentMethod]string{
	MethodCash:     "Dinheiro",
	MethodCard:     "Cartão",
	MethodPix:      "Pix",
	MethodTransfer: "Transferência",
	MethodBill:     "Boleto",
	MethodCardPix:  "Cartão + Pix",
	MethodOther:    "Outro",
}

// Label returns the Portuguese display label for the payment method.
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return paymentMethodLabels[MethodOther]
}

// ParsePaymentMethod validates a raw method code against the canonical vocabulary.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(raw)
	_, ok := paymentMethodLabels[m]
	return m, ok
}

// PaymentMethodOrDefault canonicalizes a raw code, falling back to MethodOther.
func PaymentMethodOrDefault(raw string) PaymentMethod {
	if m, ok := ParsePaymentMethod(raw); ok {
		return m
	}
	return MethodOther
}
