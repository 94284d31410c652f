package inventory

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// StockUseCase consultas de estoque: saldo actual, últimos movimientos y tablas de referencia.
type StockUseCase struct {
	itemRepo    repository.ItemRepository
	txRepo      repository.TransactionRepository
	personRepo  repository.PersonRepository
	projectRepo repository.ProjectRepository
	log         zerolog.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	personRepo repository.PersonRepository,
	projectRepo repository.ProjectRepository,
	log zerolog.Logger,
) *StockUseCase {
	return &StockUseCase{
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		personRepo:  personRepo,
		projectRepo: projectRepo,
		log:         log,
	}
}

// Balances devuelve el saldo actual de cada ítem, opcionalmente solo los de un sector.
// El sector filtra la salida; el cálculo siempre usa todas las transacciones.
func (uc *StockUseCase) Balances(ctx context.Context, sector string) ([]dto.ItemBalanceDTO, error) {
	snap, err := LoadSnapshot(ctx, uc.itemRepo, uc.txRepo)
	if err != nil {
		return nil, err
	}
	balances := ledger.FilterBySector(ledger.ComputeBalances(snap.Items, snap.Transactions), sector)
	out := make([]dto.ItemBalanceDTO, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.ItemBalanceDTO{
			ID:      b.Item.ID,
			Name:    b.Item.Name,
			Unit:    b.Item.Unit,
			Sector:  b.Item.Sector,
			Balance: b.Balance,
		})
	}
	return out, nil
}

// RecentMovements devuelve los últimos limit movimientos, del más reciente al más antiguo,
// con nombre de ítem y autor resueltos.
func (uc *StockUseCase) RecentMovements(ctx context.Context, limit int) ([]dto.MovementDTO, error) {
	snap, err := LoadSnapshot(ctx, uc.itemRepo, uc.txRepo)
	if err != nil {
		return nil, err
	}
	txs := append([]entity.Transaction(nil), snap.Transactions...)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}

	itemNames := snap.ItemNames()
	authors := PersonNames(uc.people(ctx))
	out := make([]dto.MovementDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToMovementDTO(tx, itemNames, authors))
	}
	return out, nil
}

// People lista personas. Un fallo de lectura no bloquea la pantalla: devuelve lista vacía.
func (uc *StockUseCase) People(ctx context.Context) []dto.ReferenceDTO {
	people := uc.people(ctx)
	out := make([]dto.ReferenceDTO, 0, len(people))
	for _, p := range people {
		out = append(out, dto.ReferenceDTO{ID: p.ID, Name: p.Name})
	}
	return out
}

// Projects lista proyectos (observaciones predefinidas). Igual que People, degrada a vacío.
func (uc *StockUseCase) Projects(ctx context.Context) []dto.ReferenceDTO {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron cargar los proyectos")
		return []dto.ReferenceDTO{}
	}
	out := make([]dto.ReferenceDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, dto.ReferenceDTO{ID: p.ID, Name: p.Name})
	}
	return out
}

func (uc *StockUseCase) people(ctx context.Context) []entity.Person {
	people, err := uc.personRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron cargar las personas")
		return nil
	}
	return people
}

// PersonNames índice id -> nombre de persona.
func PersonNames(people []entity.Person) map[string]string {
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	return names
}

// ToMovementDTO resuelve nombres de ítem y autor de una transacción.
func ToMovementDTO(tx entity.Transaction, itemNames, authors map[string]string) dto.MovementDTO {
	m := dto.MovementDTO{
		ID:              tx.ID,
		ItemID:          tx.ItemID,
		ItemName:        itemNames[tx.ItemID],
		Amount:          tx.Amount,
		TransactionType: tx.TransactionType,
		Timestamp:       tx.Timestamp,
	}
	if tx.Observation != nil {
		m.Observation = *tx.Observation
	}
	if tx.AuthorID != nil {
		m.AuthorName = authors[*tx.AuthorID]
	}
	return m
}

// ToTransactionResponse convierte la entidad al DTO de respuesta.
func ToTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID,
		ItemID:          tx.ItemID,
		Amount:          tx.Amount,
		TransactionType: tx.TransactionType,
		Timestamp:       tx.Timestamp,
		Observation:     tx.Observation,
		AuthorID:        tx.AuthorID,
	}
}
