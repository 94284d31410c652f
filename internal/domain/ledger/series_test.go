package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

func d(y int, m time.Month, day int) ledger.Date { return ledger.NewDate(y, m, day) }

// Escenario base: +20 el día 1, -5 el día 2 -> saldo 15 y serie {D1:20, D2:15}; D3 arrastra 15.
func TestBuildDailySeries_Escenario(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "1", 20, ts(2025, 3, 1, 10, 0)),
		tx("b", "1", -5, ts(2025, 3, 2, 10, 0)),
	}
	items := []entity.Item{papelA}

	assert.True(t, ledger.ComputeBalances(items, txs)[0].Balance.Equal(dec(15)))

	s := ledger.BuildDailySeries(items, txs, nil, saoPaulo)
	require.Equal(t, []ledger.SeriesColumn{{ItemID: "1", Name: "Papel A"}}, s.Columns)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, d(2025, 3, 1), s.Rows[0].Date)
	assert.True(t, s.Rows[0].Values[0].Decimal.Equal(dec(20)))
	assert.Equal(t, d(2025, 3, 2), s.Rows[1].Date)
	assert.True(t, s.Rows[1].Values[0].Decimal.Equal(dec(15)))

	d3 := s.ValueAt(d(2025, 3, 3), "1")
	require.True(t, d3.Valid)
	assert.True(t, d3.Decimal.Equal(dec(15)))
}

// Día 2 sin transacciones hereda el acumulado del día 1 (ni 0 ni interpolado).
func TestBuildDailySeries_ArrastraDiaSinMovimiento(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "1", 10, ts(2025, 3, 1, 10, 0)),
		tx("b", "1", 5, ts(2025, 3, 3, 10, 0)),
	}
	s := ledger.BuildDailySeries([]entity.Item{papelA}, txs, nil, saoPaulo)

	require.Len(t, s.Rows, 3)
	assert.Equal(t, d(2025, 3, 2), s.Rows[1].Date)
	require.True(t, s.Rows[1].Values[0].Valid)
	assert.True(t, s.Rows[1].Values[0].Decimal.Equal(dec(10)), "got %s", s.Rows[1].Values[0].Decimal)
	assert.True(t, s.Rows[2].Values[0].Decimal.Equal(dec(15)))
}

// El valor del día es el acumulado al cierre, no la suma de los movimientos del día.
func TestBuildDailySeries_UltimoValorDelDia(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "1", 10, ts(2025, 3, 1, 8, 0)),
		tx("c", "1", -4, ts(2025, 3, 2, 18, 0)),
		tx("b", "1", 6, ts(2025, 3, 2, 9, 0)),
	}
	s := ledger.BuildDailySeries([]entity.Item{papelA}, txs, nil, saoPaulo)

	require.Len(t, s.Rows, 2)
	assert.True(t, s.Rows[1].Values[0].Decimal.Equal(dec(12)))
}

// Empates de timestamp respetan el orden original (ordenación estable).
func TestBuildDailySeries_EmpatesEstables(t *testing.T) {
	at := ts(2025, 3, 1, 8, 0)
	txs := []entity.Transaction{
		tx("a", "1", 10, at),
		tx("b", "1", -3, at),
	}
	s := ledger.BuildDailySeries([]entity.Item{papelA}, txs, nil, saoPaulo)
	require.Len(t, s.Rows, 1)
	assert.True(t, s.Rows[0].Values[0].Decimal.Equal(dec(7)))
}

// Varios ítems: columnas ordenadas por nombre, celdas previas a la primera transacción vacías.
func TestBuildDailySeries_VariosItems(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "2", 8, ts(2025, 3, 1, 8, 0)),
		tx("b", "1", 4, ts(2025, 3, 2, 8, 0)),
		tx("c", "2", -2, ts(2025, 3, 4, 8, 0)),
		tx("x", "999", 1, ts(2025, 3, 5, 8, 0)), // huérfana: no genera columna ni fila
	}
	s := ledger.BuildDailySeries([]entity.Item{papelA, papelB}, txs, nil, saoPaulo)

	require.Equal(t, []ledger.SeriesColumn{{ItemID: "1", Name: "Papel A"}, {ItemID: "2", Name: "Papel B"}}, s.Columns)
	require.Len(t, s.Rows, 4)

	assert.False(t, s.Rows[0].Values[0].Valid, "Papel A aún no tiene movimientos el día 1")
	assert.True(t, s.Rows[0].Values[1].Decimal.Equal(dec(8)))

	assert.True(t, s.Rows[2].Values[0].Decimal.Equal(dec(4)))
	assert.True(t, s.Rows[2].Values[1].Decimal.Equal(dec(8)))

	assert.True(t, s.Rows[3].Values[0].Decimal.Equal(dec(4)))
	assert.True(t, s.Rows[3].Values[1].Decimal.Equal(dec(6)))

	assert.False(t, s.ValueAt(d(2025, 2, 28), "2").Valid)
	assert.False(t, s.ValueAt(d(2025, 3, 1), "999").Valid)
}

func TestBuildDailySeries_FiltroPorItem(t *testing.T) {
	txs := []entity.Transaction{
		tx("a", "2", 8, ts(2025, 3, 1, 8, 0)),
		tx("b", "1", 4, ts(2025, 3, 2, 8, 0)),
	}
	id := "1"
	s := ledger.BuildDailySeries([]entity.Item{papelA, papelB}, txs, &id, saoPaulo)

	require.Len(t, s.Columns, 1)
	assert.Equal(t, "1", s.Columns[0].ItemID)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, d(2025, 3, 2), s.Rows[0].Date)

	missing := "3"
	assert.True(t, ledger.BuildDailySeries([]entity.Item{papelA, papelB, cola}, txs, &missing, saoPaulo).IsEmpty())
}

func TestBuildDailySeries_SinTransacciones(t *testing.T) {
	s := ledger.BuildDailySeries([]entity.Item{papelA, papelB}, nil, nil, saoPaulo)
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Columns)
}

// El día de cada transacción se calcula en la zona del estoque, no en UTC.
func TestBuildDailySeries_FechaLocal(t *testing.T) {
	// 2025-03-02 01:30 UTC == 2025-03-01 22:30 en São Paulo
	late := time.Date(2025, 3, 2, 1, 30, 0, 0, time.UTC)
	txs := []entity.Transaction{tx("a", "1", 3, late)}

	s := ledger.BuildDailySeries([]entity.Item{papelA}, txs, nil, saoPaulo)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, d(2025, 3, 1), s.Rows[0].Date)
}
