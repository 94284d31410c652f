package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = fmt.Errorf("%w: la cantidad debe ser un entero positivo", ErrInvalidInput)
	ErrUnknownItem       = fmt.Errorf("%w: ítem desconocido", ErrNotFound)
	ErrSchemaMismatch    = errors.New("el almacén devolvió registros sin columnas requeridas")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
