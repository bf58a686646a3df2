package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the lancamentos table.
// Amount uses a precise decimal type; conversion to float happens only at
// the response boundary.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Type          string          `db:"tipo"`
	Date          time.Time       `db:"data"`
	Amount        decimal.Decimal `db:"valor"`
	Description   string          `db:"descricao"`
	Category      string          `db:"categoria"`
	PaymentMethod string          `db:"metodo_pagamento"`
	AuditFields
}
