package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/movements.
// El largo de observation lo controla ledger.NewMovement, después de aplicar el tipo.
type RecordMovementRequest struct {
	ItemID      string  `json:"item_id" validate:"required"`
	Quantity    int64   `json:"quantity" validate:"required,gt=0"`
	Kind        string  `json:"kind" validate:"required,oneof=Entrada Saída 'Contagem inicial'"`
	Observation *string `json:"observation,omitempty"`
	AuthorID    *string `json:"author_id,omitempty"`
}

// TransactionResponse transacción tal como quedó guardada.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"12.5"`
	TransactionType string          `json:"transaction_type"`
	Timestamp       time.Time       `json:"timestamp"`
	Observation     *string         `json:"observation,omitempty"`
	AuthorID        *string         `json:"author_id,omitempty"`
}

// ItemBalanceDTO esquema estable de saldo: id, name, unit, sector, balance.
type ItemBalanceDTO struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	Sector  string          `json:"sector"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"12.5"`
}

// MovementDTO movimiento con los nombres de ítem y autor ya resueltos.
type MovementDTO struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	ItemName        string          `json:"item_name"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"12.5"`
	TransactionType string          `json:"transaction_type"`
	Timestamp       time.Time       `json:"timestamp"`
	Observation     string          `json:"observation,omitempty"`
	AuthorName      string          `json:"author_name,omitempty"`
}

// ReferenceDTO persona o proyecto (id, name).
type ReferenceDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
