package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ItemRepository define el puerto de lectura de ítems. Los ítems se mantienen fuera del motor.
type ItemRepository interface {
	List(ctx context.Context) ([]entity.Item, error)
	// GetByID devuelve (nil, nil) si el ítem no existe.
	GetByID(ctx context.Context, id string) (*entity.Item, error)
}
