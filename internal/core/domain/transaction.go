package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an inflow or an outflow.
type TransactionType string

const (
	Entrada TransactionType = "Entrada"
	Saida   TransactionType = "Saída"
)

// ParseTransactionType validates a raw type value.
func ParseTransactionType(raw string) (TransactionType, bool) {
	switch TransactionType(raw) {
	case Entrada:
		return Entrada, true
	case Saida:
		return Saida, true
	}
	return "", false
}

// Transaction represents a single ledger entry owned by a user.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> User.userID, the owner
	Type          TransactionType `json:"type"`          // Entrada or Saída (Not Null)
	Date          time.Time       `json:"date"`          // Calendar timestamp, UTC date semantics
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	AuditFields
}

// Signed returns the amount with Entrada positive and Saída negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Saida {
		return t.Amount.Neg()
	}
	return t.Amount
}
