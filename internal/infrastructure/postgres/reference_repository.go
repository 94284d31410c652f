package postgres

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var (
	_ repository.PersonRepository  = (*PersonRepo)(nil)
	_ repository.ProjectRepository = (*ProjectRepo)(nil)
)

// PersonRepo lectura de la tabla people.
type PersonRepo struct{ q Querier }

// NewPersonRepository construye el adaptador.
func NewPersonRepository(q Querier) *PersonRepo { return &PersonRepo{q: q} }

// List devuelve id y nombre de cada persona.
func (r *PersonRepo) List(ctx context.Context) ([]entity.Person, error) {
	out := make([]entity.Person, 0)
	err := listRefs(ctx, r.q, "people", func(id, name string) {
		out = append(out, entity.Person{ID: id, Name: name})
	})
	return out, err
}

// ProjectRepo lectura de la tabla projects.
type ProjectRepo struct{ q Querier }

// NewProjectRepository construye el adaptador.
func NewProjectRepository(q Querier) *ProjectRepo { return &ProjectRepo{q: q} }

// List devuelve id y nombre de cada proyecto.
func (r *ProjectRepo) List(ctx context.Context) ([]entity.Project, error) {
	out := make([]entity.Project, 0)
	err := listRefs(ctx, r.q, "projects", func(id, name string) {
		out = append(out, entity.Project{ID: id, Name: name})
	})
	return out, err
}

// listRefs recorre una tabla (id, name) ordenada por nombre. table no proviene del usuario.
func listRefs(ctx context.Context, q Querier, table string, add func(id, name string)) error {
	rows, err := q.Query(ctx, `SELECT id::text, name FROM `+table+` ORDER BY name, id`)
	if err != nil {
		return wrapRead("list "+table, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id   string
			name *string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return wrapRead("scan "+table, err)
		}
		n, err := requireText(table, "name", name)
		if err != nil {
			return err
		}
		add(id, n)
	}
	if err := rows.Err(); err != nil {
		return wrapRead("list "+table, err)
	}
	return nil
}
