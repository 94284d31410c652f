package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia de movimentações.
// Solo lectura completa y alta de una fila: no hay Update ni Delete (append-only).
type TransactionRepository interface {
	List(ctx context.Context) ([]entity.Transaction, error)
	// Create inserta una transacción y completa su ID si el almacén lo asigna.
	Create(ctx context.Context, tx *entity.Transaction) error
}
