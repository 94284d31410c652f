package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo adaptador de solo-anexar sobre la tabla transactions.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// List devuelve todas las transacciones en el orden del almacén; quien necesite orden, ordena.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.Transaction, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id::text, item::text, amount, transaction_type, "timestamp", observation, author::text
		FROM transactions`)
	if err != nil {
		return nil, wrapRead("list transactions", err)
	}
	defer rows.Close()

	out := make([]entity.Transaction, 0)
	for rows.Next() {
		var row transactionRow
		if err := rows.Scan(&row.id, &row.item, &row.amount, &row.typ, &row.ts, &row.obs, &row.authorID); err != nil {
			return nil, wrapRead("scan transaction", err)
		}
		tx, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("list transactions", err)
	}
	return out, nil
}

// transactionRow fila tal como sale de la tabla; las columnas obligatorias se leen como punteros
// para detectar NULL.
type transactionRow struct {
	id            string
	item, typ     *string
	amount        decimal.NullDecimal
	ts            *time.Time
	obs, authorID *string
}

// toEntity exige item, amount, transaction_type y timestamp; un NULL es incompatibilidad de esquema.
func (r transactionRow) toEntity() (entity.Transaction, error) {
	if r.item == nil || r.typ == nil || r.ts == nil || !r.amount.Valid {
		return entity.Transaction{}, fmt.Errorf("transacción %s sin item/amount/transaction_type/timestamp: %w", r.id, domain.ErrSchemaMismatch)
	}
	return entity.Transaction{
		ID:              r.id,
		ItemID:          *r.item,
		Amount:          r.amount.Decimal,
		TransactionType: *r.typ,
		Timestamp:       *r.ts,
		Observation:     r.obs,
		AuthorID:        r.authorID,
	}, nil
}

// Create inserta la transacción y completa tx.ID con el id asignado por el almacén.
// Un id ya presente se descarta; la tabla es dueña de la secuencia.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	var id string
	err := r.q.QueryRow(ctx, `
		INSERT INTO transactions (item, amount, transaction_type, "timestamp", observation, author)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text`,
		tx.ItemID, tx.Amount, tx.TransactionType, tx.Timestamp, tx.Observation, tx.AuthorID,
	).Scan(&id)
	if err != nil {
		if isSchemaError(err) {
			return fmt.Errorf("insert transaction: %w: %v", domain.ErrSchemaMismatch, err)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	tx.ID = id
	return nil
}
