package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// RecordMovementUseCase registra una movimentação (Entrada, Saída o Contagem inicial).
// Hace exactamente una escritura; si falla, el error sube tal cual, sin reintento.
type RecordMovementUseCase struct {
	itemRepo      repository.ItemRepository
	txRepo        repository.TransactionRepository
	loc           *time.Location
	allowNegative bool
	runner        TxRunner
	now           func() time.Time
	log           zerolog.Logger
}

// NewRecordMovementUseCase construye el caso de uso.
// allowNegative=true conserva el comportamiento histórico: no se controla stock mínimo.
func NewRecordMovementUseCase(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	loc *time.Location,
	allowNegative bool,
	log zerolog.Logger,
) *RecordMovementUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &RecordMovementUseCase{
		itemRepo:      itemRepo,
		txRepo:        txRepo,
		loc:           loc,
		allowNegative: allowNegative,
		now:           time.Now,
		log:           log,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *RecordMovementUseCase) WithClock(now func() time.Time) *RecordMovementUseCase {
	uc.now = now
	return uc
}

// WithTxRunner serializa lectura de saldo + inserción cuando se controla stock mínimo.
// Sin runner (o con allowNegative=true) se escribe directo en txRepo.
func (uc *RecordMovementUseCase) WithTxRunner(r TxRunner) *RecordMovementUseCase {
	uc.runner = r
	return uc
}

// RecordMovementInput entrada para registrar un movimiento. El timestamp no se recibe:
// lo asigna el caso de uso en la zona del estoque.
type RecordMovementInput struct {
	ItemID      string
	Quantity    int64
	Kind        string
	Observation *string
	AuthorID    *string
}

// RecordMovement valida, firma la cantidad y guarda la transacción.
//
// Errores: domain.ErrInvalidInput / ErrInvalidQuantity (tipo o cantidad), domain.ErrUnknownItem,
// domain.ErrInsufficientStock (solo con allowNegative=false) o el error del repositorio.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, in RecordMovementInput) (*entity.Transaction, error) {
	kind, err := ledger.ParseMovementKind(in.Kind)
	if err != nil {
		return nil, err
	}
	tx, err := ledger.NewMovement(in.ItemID, in.Quantity, kind, in.Observation, in.AuthorID, uc.now().In(uc.loc))
	if err != nil {
		return nil, err
	}

	var item *entity.Item
	write := func(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) error {
		var err error
		item, err = itemRepo.GetByID(ctx, in.ItemID)
		if err != nil {
			return fmt.Errorf("buscar ítem: %w", err)
		}
		if item == nil {
			return domain.ErrUnknownItem
		}

		if !uc.allowNegative && tx.Amount.IsNegative() {
			history, err := txRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("listar transacciones: %w", err)
			}
			if ledger.BalanceOf(item.ID, history).Add(tx.Amount).IsNegative() {
				return domain.ErrInsufficientStock
			}
		}

		if err := txRepo.Create(ctx, &tx); err != nil {
			return fmt.Errorf("registrar movimiento: %w", err)
		}
		return nil
	}

	if uc.runner != nil && !uc.allowNegative {
		err = uc.runner.RunForItem(ctx, in.ItemID, write)
	} else {
		err = write(uc.itemRepo, uc.txRepo)
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", tx.ID).
		Str("item_id", tx.ItemID).
		Str("item", item.Name).
		Str("type", tx.TransactionType).
		Str("amount", tx.Amount.String()).
		Msg("movimiento registrado")
	return &tx, nil
}
