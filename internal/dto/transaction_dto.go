package dto

import (
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Display layouts for dates. dataInput is machine-parseable, dataTabela is
// the pt-BR table rendering.
const (
	dateInputLayout  = "2006-01-02"
	dateTabelaLayout = "02/01/2006"
)

// SaveTransactionRequest carries the fields of a lancamento create or update.
// All fields are required; unknown category/method codes are canonicalized to
// "other" rather than rejected.
type SaveTransactionRequest struct {
	Tipo            string          `json:"tipo" binding:"required,oneof=Entrada Saída"`
	Data            string          `json:"data" binding:"required,datetime=2006-01-02"`
	Valor           decimal.Decimal `json:"valor" binding:"required"`
	Descricao       string          `json:"descricao" binding:"required"`
	Categoria       string          `json:"categoria" binding:"required"`
	MetodoPagamento string          `json:"metodo_pagamento" binding:"required"`
}

// TransactionResponse is the full view of a single ledger entry.
type TransactionResponse struct {
	ID              string  `json:"id"`
	Tipo            string  `json:"tipo"`
	Valor           float64 `json:"valor"`
	Descricao       string  `json:"descricao"`
	Categoria       string  `json:"categoria"`
	MetodoPagamento string  `json:"metodo_pagamento"`
	DataTabela      string  `json:"data_tabela"`
	DataInput       string  `json:"data_input"`
}

// ToTransactionResponse converts a domain.Transaction for output. Monetary
// values become plain floats here and nowhere earlier.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.TransactionID,
		Tipo:            string(txn.Type),
		Valor:           txn.Amount.InexactFloat64(),
		Descricao:       txn.Description,
		Categoria:       string(txn.Category),
		MetodoPagamento: string(txn.PaymentMethod),
		DataTabela:      txn.Date.Format(dateTabelaLayout),
		DataInput:       txn.Date.Format(dateInputLayout),
	}
}

// ToTransactionResponseList converts a slice of domain transactions.
func ToTransactionResponseList(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
