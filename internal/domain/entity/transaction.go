package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción tal como se guardan en la tabla transactions.
const (
	TransactionTypeEntrada = "Entrada"
	TransactionTypeSaida   = "Saída"
)

// Transaction representa una movimentação de estoque. Es append-only: nunca se edita ni se borra,
// las correcciones se hacen con una nueva transacción compensatoria.
type Transaction struct {
	ID              string
	ItemID          string
	Amount          decimal.Decimal // positivo entrada, negativo saída (se fija al crear)
	TransactionType string
	Timestamp       time.Time
	Observation     *string
	AuthorID        *string
}
