package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// isSchemaError verifica si el error indica tabla o columna inexistente (42P01 / 42703).
func isSchemaError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" || pgErr.Code == "42703" // undefined_table, undefined_column
	}
	return false
}

// wrapRead traduce errores de lectura: esquema incompatible -> domain.ErrSchemaMismatch.
func wrapRead(op string, err error) error {
	if isSchemaError(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrSchemaMismatch, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireText desreferencia una columna obligatoria; NULL es incompatibilidad de esquema.
func requireText(table, column string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%s.%s es NULL: %w", table, column, domain.ErrSchemaMismatch)
	}
	return *v, nil
}

func optionalText(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
