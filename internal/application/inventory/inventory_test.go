package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

var saoPaulo = time.FixedZone("America/Sao_Paulo", -3*60*60)

var (
	papelA = entity.Item{ID: "1", Name: "Papel A", Unit: "kg", Sector: "Impressão"}
	cola   = entity.Item{ID: "2", Name: "Cola", Unit: "L", Sector: "Acabamento"}
)

func fixedClock() time.Time { return time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC) }

func newRecorder(store *memory.Store, allowNegative bool) *inventory.RecordMovementUseCase {
	return inventory.NewRecordMovementUseCase(store, store.Transactions(), saoPaulo, allowNegative, zerolog.Nop()).
		WithClock(fixedClock)
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// RecordMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_EntradaYSaida(t *testing.T) {
	store := memory.NewStore(papelA)
	uc := newRecorder(store, true)
	ctx := context.Background()

	in, err := uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: 5, Kind: "Entrada"})
	require.NoError(t, err)
	assert.True(t, in.Amount.Equal(decimal.NewFromInt(5)))
	assert.NotEmpty(t, in.ID)

	out, err := uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: 5, Kind: "Saída"})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(decimal.NewFromInt(-5)))

	txs, err := store.Transactions().List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, txs[1].Amount.Equal(decimal.NewFromInt(-5)), "la última transacción leída debe ser -5")
}

func TestRecordMovement_TimestampEnZonaDelEstoque(t *testing.T) {
	store := memory.NewStore(papelA)
	got, err := newRecorder(store, true).RecordMovement(context.Background(),
		inventory.RecordMovementInput{ItemID: "1", Quantity: 1, Kind: "Entrada"})
	require.NoError(t, err)

	assert.Equal(t, saoPaulo, got.Timestamp.Location())
	assert.True(t, got.Timestamp.Equal(fixedClock()))
	assert.Equal(t, 12, got.Timestamp.Hour())
}

func TestRecordMovement_ContagemInicial(t *testing.T) {
	store := memory.NewStore(papelA)
	got, err := newRecorder(store, true).RecordMovement(context.Background(), inventory.RecordMovementInput{
		ItemID: "1", Quantity: 30, Kind: "Contagem inicial", Observation: strPtr("Projeto X"), AuthorID: strPtr("7"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TransactionTypeEntrada, got.TransactionType)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Contagem inicial", *got.Observation)
	assert.Equal(t, "7", *got.AuthorID)
}

func TestRecordMovement_ValidacionAntesDeEscribir(t *testing.T) {
	store := memory.NewStore(papelA)
	uc := newRecorder(store, true)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: 0, Kind: "Entrada"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: -3, Kind: "Saída"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: 3, Kind: "Ajuste"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "nope", Quantity: 3, Kind: "Entrada"})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)

	assert.Equal(t, 0, store.Creates(), "ninguna validación fallida debe llegar al almacén")
}

func TestRecordMovement_SaldoNegativoPermitidoPorDefecto(t *testing.T) {
	store := memory.NewStore(papelA)
	got, err := newRecorder(store, true).RecordMovement(context.Background(),
		inventory.RecordMovementInput{ItemID: "1", Quantity: 4, Kind: "Saída"})
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(-4)))
}

func TestRecordMovement_StockMinimoActivado(t *testing.T) {
	store := memory.NewStore(papelA).AddTransactions(entity.Transaction{
		ID: "t1", ItemID: "1", Amount: decimal.NewFromInt(3), TransactionType: entity.TransactionTypeEntrada,
		Timestamp: fixedClock().Add(-time.Hour),
	})
	uc := newRecorder(store, false)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: 4, Kind: "Saída"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, store.Creates())

	_, err = uc.RecordMovement(ctx, inventory.RecordMovementInput{ItemID: "1", Quantity: 3, Kind: "Saída"})
	assert.NoError(t, err, "dejar el saldo exactamente en 0 es válido")
}

// Con el runner, dos Saídas concurrentes no pueden dejar el saldo negativo.
func TestRecordMovement_StockMinimoConcurrente(t *testing.T) {
	store := memory.NewStore(papelA).AddTransactions(entity.Transaction{
		ID: "t1", ItemID: "1", Amount: decimal.NewFromInt(5), TransactionType: entity.TransactionTypeEntrada,
		Timestamp: fixedClock().Add(-time.Hour),
	})
	uc := newRecorder(store, false).WithTxRunner(store)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordMovement(context.Background(), inventory.RecordMovementInput{ItemID: "1", Quantity: 3, Kind: "Saída"})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}
	assert.Equal(t, 1, ok)

	txs, err := store.Transactions().List(context.Background())
	require.NoError(t, err)
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(2)))
}

func TestRecordMovement_FalloDeEscrituraSePropaga(t *testing.T) {
	boom := errors.New("insert falló")
	store := memory.NewStore(papelA)
	store.CreateTxErr = boom

	_, err := newRecorder(store, true).RecordMovement(context.Background(),
		inventory.RecordMovementInput{ItemID: "1", Quantity: 1, Kind: "Entrada"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.Creates(), "sin reintentos")
}

// ──────────────────────────────────────────────────────────────────────────────
// StockUseCase
// ──────────────────────────────────────────────────────────────────────────────

func newStock(store *memory.Store) *inventory.StockUseCase {
	return inventory.NewStockUseCase(store, store.Transactions(), store.People(), store.Projects(), zerolog.Nop())
}

func movement(id, item string, amount int64, at time.Time, author *string) entity.Transaction {
	typ := entity.TransactionTypeEntrada
	if amount < 0 {
		typ = entity.TransactionTypeSaida
	}
	return entity.Transaction{ID: id, ItemID: item, Amount: decimal.NewFromInt(amount), TransactionType: typ, Timestamp: at, AuthorID: author}
}

func TestBalances(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, saoPaulo)
	store := memory.NewStore(papelA, cola).AddTransactions(
		movement("a", "1", 20, base, nil),
		movement("b", "1", -5, base.AddDate(0, 0, 1), nil),
	)
	uc := newStock(store)

	all, err := uc.Balances(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Papel A", all[0].Name)
	assert.Equal(t, "kg", all[0].Unit)
	assert.True(t, all[0].Balance.Equal(decimal.NewFromInt(15)))
	assert.True(t, all[1].Balance.IsZero())

	acab, err := uc.Balances(context.Background(), "Acabamento")
	require.NoError(t, err)
	require.Len(t, acab, 1)
	assert.Equal(t, "2", acab[0].ID)
}

func TestBalances_ErrorDeLecturaAborta(t *testing.T) {
	store := memory.NewStore(papelA)
	store.ListTxErr = domain.ErrSchemaMismatch

	_, err := newStock(store).Balances(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
}

func TestRecentMovements(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, saoPaulo)
	store := memory.NewStore(papelA, cola).
		AddPeople(entity.Person{ID: "p1", Name: "Ana"}).
		AddTransactions(
			movement("a", "1", 20, base, strPtr("p1")),
			movement("c", "2", 2, base.Add(2*time.Hour), nil),
			movement("b", "1", -5, base.Add(time.Hour), nil),
		)

	got, err := newStock(store).RecentMovements(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "Cola", got[0].ItemName)
	assert.Equal(t, "b", got[1].ID)

	all, err := newStock(store).RecentMovements(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana", all[2].AuthorName)
}

func TestReferencias_DegradanAVacio(t *testing.T) {
	store := memory.NewStore(papelA).
		AddPeople(entity.Person{ID: "p1", Name: "Ana"}).
		AddProjects(entity.Project{ID: "j1", Name: "Catálogo 2025"})
	uc := newStock(store)

	assert.Len(t, uc.People(context.Background()), 1)
	assert.Equal(t, "Catálogo 2025", uc.Projects(context.Background())[0].Name)

	store.PeopleErr = errors.New("tabla people no existe")
	store.ProjectsErr = errors.New("tabla projects no existe")
	assert.Empty(t, uc.People(context.Background()))
	assert.Empty(t, uc.Projects(context.Background()))
}
