package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// PersonRepository lectura de personas (autores de movimientos).
type PersonRepository interface {
	List(ctx context.Context) ([]entity.Person, error)
}

// ProjectRepository lectura de proyectos (observaciones predefinidas).
type ProjectRepository interface {
	List(ctx context.Context) ([]entity.Project, error)
}
