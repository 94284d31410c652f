package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta fn de forma atómica y serializada por ítem: la lectura del saldo y la
// inserción no se intercalan con otra movimentação del mismo ítem (implementado en infrastructure).
type TxRunner interface {
	RunForItem(ctx context.Context, itemID string, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
