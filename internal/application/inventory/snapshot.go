package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Snapshot foto en memoria de ítems y transacciones sobre la que trabaja el motor de saldos.
type Snapshot struct {
	Items        []entity.Item
	Transactions []entity.Transaction
}

// LoadSnapshot lee el conjunto completo de ítems y transacciones. Un error en cualquiera de
// las dos lecturas (incluido domain.ErrSchemaMismatch) aborta: no se calcula con datos parciales.
func LoadSnapshot(ctx context.Context, itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) (Snapshot, error) {
	items, err := itemRepo.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cargar ítems: %w", err)
	}
	txs, err := txRepo.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cargar transacciones: %w", err)
	}
	return Snapshot{Items: items, Transactions: txs}, nil
}

// ItemNames índice id -> nombre de ítem.
func (s Snapshot) ItemNames() map[string]string {
	names := make(map[string]string, len(s.Items))
	for _, it := range s.Items {
		names[it.ID] = it.Name
	}
	return names
}
