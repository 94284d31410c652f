package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

var saoPaulo = time.FixedZone("America/Sao_Paulo", -3*60*60)

var (
	papelA = entity.Item{ID: "1", Name: "Papel A", Unit: "kg", Sector: "Impressão"}
	cola   = entity.Item{ID: "2", Name: "Cola", Unit: "L", Sector: "Acabamento"}
	papelB = entity.Item{ID: "3", Name: "Papel B", Unit: "kg", Sector: "Impressão"}
)

type fakeRenderer struct {
	got *report.Data
	err error
}

func (f *fakeRenderer) RenderDailyReport(_ context.Context, data *report.Data) ([]byte, error) {
	f.got = data
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF"), nil
}

func strPtr(s string) *string { return &s }

func at(day, hh int) time.Time { return time.Date(2025, 3, day, hh, 0, 0, 0, saoPaulo) }

func mov(id, item string, amount int64, when time.Time, obs, author *string) entity.Transaction {
	typ := entity.TransactionTypeEntrada
	if amount < 0 {
		typ = entity.TransactionTypeSaida
	}
	return entity.Transaction{
		ID: id, ItemID: item, Amount: decimal.NewFromInt(amount), TransactionType: typ,
		Timestamp: when, Observation: obs, AuthorID: author,
	}
}

func newReport(store *memory.Store, r report.ReportRenderer) *report.DailyReportUseCase {
	return report.NewDailyReportUseCase(store, store.Transactions(), store.People(), r, "Estoque", saoPaulo, zerolog.Nop()).
		WithClock(func() time.Time { return at(10, 18) })
}

func fixture() *memory.Store {
	return memory.NewStore(papelA, cola, papelB).
		AddPeople(entity.Person{ID: "p1", Name: "Ana"}).
		AddTransactions(
			mov("a", "1", 20, at(9, 10), nil, nil),
			mov("b", "2", -1, at(10, 16), strPtr("Projeto X"), strPtr("p1")),
			mov("c", "1", -5, at(10, 9), nil, nil),
			mov("d", "3", 7, at(11, 9), nil, nil),
		)
}

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_MovimentacoesDelDiaOrdenadas(t *testing.T) {
	data, err := newReport(fixture(), nil).Build(context.Background(), ledger.NewDate(2025, 3, 10))
	require.NoError(t, err)

	assert.Equal(t, "Estoque", data.Title)
	assert.Equal(t, "2025-03-10", data.Day.String())
	require.Len(t, data.Movements, 2)

	assert.Equal(t, "Papel A", data.Movements[0].ItemName)
	assert.Equal(t, 9, data.Movements[0].Time.Hour())
	assert.True(t, data.Movements[0].Amount.Equal(decimal.NewFromInt(-5)))

	assert.Equal(t, "Cola", data.Movements[1].ItemName)
	assert.Equal(t, "Projeto X", data.Movements[1].Observation)
	assert.Equal(t, "Ana", data.Movements[1].Author)
	assert.Equal(t, "L", data.Movements[1].Unit)
}

func TestBuild_SaldoPorSectorEnOrdenDeAparicion(t *testing.T) {
	data, err := newReport(fixture(), nil).Build(context.Background(), ledger.NewDate(2025, 3, 10))
	require.NoError(t, err)

	require.Len(t, data.Sectors, 2)
	assert.Equal(t, "Impressão", data.Sectors[0].Sector)
	require.Len(t, data.Sectors[0].Balances, 2)
	assert.Equal(t, "1", data.Sectors[0].Balances[0].Item.ID)
	assert.True(t, data.Sectors[0].Balances[0].Balance.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "3", data.Sectors[0].Balances[1].Item.ID)

	assert.Equal(t, "Acabamento", data.Sectors[1].Sector)
	assert.True(t, data.Sectors[1].Balances[0].Balance.Equal(decimal.NewFromInt(-1)))
}

func TestBuild_OmiteMovimientosDeItemsInexistentes(t *testing.T) {
	store := fixture().AddTransactions(mov("z", "99", 4, at(10, 12), strPtr("borrado"), nil))

	data, err := newReport(store, nil).Build(context.Background(), ledger.NewDate(2025, 3, 10))
	require.NoError(t, err)

	require.Len(t, data.Movements, 2)
	for _, m := range data.Movements {
		assert.NotEmpty(t, m.ItemName)
		assert.NotEqual(t, "borrado", m.Observation)
	}
	require.Len(t, data.Sectors, 2)
	assert.Len(t, data.Sectors[0].Balances, 2)
}

func TestBuild_DiaSinMovimientos(t *testing.T) {
	data, err := newReport(fixture(), nil).Build(context.Background(), ledger.NewDate(2025, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, data.Movements)
	assert.Len(t, data.Sectors, 2)
}

func TestBuild_PersonasNoDisponibles(t *testing.T) {
	store := fixture()
	store.PeopleErr = errors.New("sin tabla")
	data, err := newReport(store, nil).Build(context.Background(), ledger.NewDate(2025, 3, 10))
	require.NoError(t, err)
	assert.Empty(t, data.Movements[1].Author)
}

func TestBuild_ErrorDeLectura(t *testing.T) {
	store := fixture()
	store.ItemsErr = domain.ErrSchemaMismatch
	_, err := newReport(store, nil).Build(context.Background(), ledger.NewDate(2025, 3, 10))
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
}

// ──────────────────────────────────────────────────────────────────────────────
// Render
// ──────────────────────────────────────────────────────────────────────────────

func TestRender(t *testing.T) {
	r := &fakeRenderer{}
	uc := newReport(fixture(), r)

	doc, name, err := uc.Render(context.Background(), uc.Today())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), doc)
	assert.Equal(t, "relatorio_estoque_2025-03-10.pdf", name)
	require.NotNil(t, r.got)
	assert.Len(t, r.got.Movements, 2)

	r.err = errors.New("fuente no encontrada")
	_, _, err = uc.Render(context.Background(), uc.Today())
	assert.ErrorIs(t, err, r.err)
}

func TestGroupBySector_Vacio(t *testing.T) {
	assert.Empty(t, report.GroupBySector(nil))
}
