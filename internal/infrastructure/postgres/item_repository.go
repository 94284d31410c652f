package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id::text, name, unit, sector`

// List devuelve todos los ítems. name y unit son obligatorios; sector puede ser NULL.
func (r *ItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	rows, err := r.q.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, wrapRead("list items", err)
	}
	defer rows.Close()

	out := make([]entity.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapRead("list items", err)
	}
	return out, nil
}

// GetByID obtiene un ítem por ID; (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	row := r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id::text = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func scanItem(row pgx.Row) (entity.Item, error) {
	var (
		id                 string
		name, unit, sector *string
	)
	if err := row.Scan(&id, &name, &unit, &sector); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Item{}, err
		}
		return entity.Item{}, wrapRead("scan item", err)
	}
	it := entity.Item{ID: id, Sector: optionalText(sector)}
	var err error
	if it.Name, err = requireText("items", "name", name); err != nil {
		return entity.Item{}, fmt.Errorf("item %s: %w", id, err)
	}
	if it.Unit, err = requireText("items", "unit", unit); err != nil {
		return entity.Item{}, fmt.Errorf("item %s: %w", id, err)
	}
	return it, nil
}
