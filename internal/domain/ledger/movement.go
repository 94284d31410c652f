package ledger

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementKind es el tipo de movimiento elegido por quien registra.
type MovementKind string

const (
	KindEntrada         MovementKind = "Entrada"
	KindSaida           MovementKind = "Saída"
	KindContagemInicial MovementKind = "Contagem inicial"
)

// InitialCountObservation observación fija de las entradas de contagem inicial.
const InitialCountObservation = "Contagem inicial"

// MaxObservationRunes largo máximo de la observación que se guarda.
const MaxObservationRunes = 500

// ParseMovementKind valida el tipo recibido desde fuera (HTTP, CLI).
func ParseMovementKind(s string) (MovementKind, error) {
	switch k := MovementKind(s); k {
	case KindEntrada, KindSaida, KindContagemInicial:
		return k, nil
	}
	return "", domain.ErrInvalidInput
}

// NewMovement construye la transacción a guardar. Es el único lugar donde se fija el signo:
// Entrada y Contagem inicial -> +quantity, Saída -> -quantity.
//
// Contagem inicial se guarda como Entrada con la observación forzada a "Contagem inicial",
// descartando lo que haya escrito el usuario, para que el conteo inicial sea reconocible en
// el histórico. El largo de la observación se controla después de forzarla, así una
// Contagem inicial nunca falla por un texto que se iba a descartar. El timestamp lo asigna el llamador con su reloj (now) en la zona del estoque.
func NewMovement(itemID string, quantity int64, kind MovementKind, observation, authorID *string, now time.Time) (entity.Transaction, error) {
	if itemID == "" {
		return entity.Transaction{}, domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return entity.Transaction{}, domain.ErrInvalidQuantity
	}

	tx := entity.Transaction{
		ItemID:      itemID,
		Timestamp:   now,
		Observation: observation,
		AuthorID:    authorID,
	}
	q := decimal.NewFromInt(quantity)

	switch kind {
	case KindEntrada:
		tx.TransactionType = entity.TransactionTypeEntrada
		tx.Amount = q
	case KindSaida:
		tx.TransactionType = entity.TransactionTypeSaida
		tx.Amount = q.Neg()
	case KindContagemInicial:
		obs := InitialCountObservation
		tx.TransactionType = entity.TransactionTypeEntrada
		tx.Amount = q
		tx.Observation = &obs
	default:
		return entity.Transaction{}, domain.ErrInvalidInput
	}
	if tx.Observation != nil && utf8.RuneCountInString(*tx.Observation) > MaxObservationRunes {
		return entity.Transaction{}, domain.ErrInvalidInput
	}
	return tx, nil
}
