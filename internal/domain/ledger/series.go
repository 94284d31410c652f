package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// SeriesColumn identifica una columna de la serie (un ítem).
type SeriesColumn struct {
	ItemID string
	Name   string
}

// SeriesRow es el saldo acumulado al final de Date para cada columna.
// Values[i] corresponde a Columns[i]; Valid=false significa que el ítem aún no tenía
// ninguna transacción en esa fecha.
type SeriesRow struct {
	Date   Date
	Values []decimal.NullDecimal
}

// DailySeries tabla fecha -> saldo acumulado por ítem, con una fila por cada día de
// calendario entre la primera y la última transacción.
type DailySeries struct {
	Columns []SeriesColumn
	Rows    []SeriesRow
}

// IsEmpty indica si la serie no tiene filas.
func (s DailySeries) IsEmpty() bool { return len(s.Rows) == 0 }

// ColumnIndex devuelve la posición de la columna del ítem o -1.
func (s DailySeries) ColumnIndex(itemID string) int {
	for i, c := range s.Columns {
		if c.ItemID == itemID {
			return i
		}
	}
	return -1
}

// ValueAt devuelve el saldo del ítem al final de day, arrastrando el último valor conocido.
// Fechas posteriores a la última fila devuelven el último saldo; fechas anteriores a la
// primera transacción del ítem devuelven Valid=false.
func (s DailySeries) ValueAt(day Date, itemID string) decimal.NullDecimal {
	col := s.ColumnIndex(itemID)
	if col < 0 || len(s.Rows) == 0 {
		return decimal.NullDecimal{}
	}
	// primera fila con fecha > day
	i := sort.Search(len(s.Rows), func(i int) bool { return s.Rows[i].Date.After(day) })
	if i == 0 {
		return decimal.NullDecimal{}
	}
	return s.Rows[i-1].Values[col]
}

// BuildDailySeries construye la serie diaria de saldos acumulados.
//
//  1. Ordena las transacciones por timestamp (orden estable: los empates respetan el orden original).
//  2. Acumula Amount por ítem en ese orden.
//  3. Por (fecha local, ítem) se queda con el último acumulado del día, no con la suma del día.
//  4. Pivota a filas por fecha y columnas por ítem (ordenadas por nombre, luego id).
//  5. Rellena hacia adelante: un día sin transacción hereda el último acumulado del ítem.
//
// Si itemFilter no es nil se consideran solo las transacciones de ese ítem. Sin transacciones
// en el alcance (o con solo transacciones huérfanas) se devuelve una serie vacía.
func BuildDailySeries(items []entity.Item, txs []entity.Transaction, itemFilter *string, loc *time.Location) DailySeries {
	if loc == nil {
		loc = time.UTC
	}
	byID := make(map[string]entity.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	scoped := make([]entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if itemFilter != nil && tx.ItemID != *itemFilter {
			continue
		}
		if _, ok := byID[tx.ItemID]; !ok {
			continue
		}
		scoped = append(scoped, tx)
	}
	if len(scoped) == 0 {
		return DailySeries{}
	}

	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].Timestamp.Before(scoped[j].Timestamp)
	})

	// acumulado por ítem; último valor de cada día por ítem
	running := make(map[string]decimal.Decimal)
	lastOfDay := make(map[Date]map[string]decimal.Decimal)
	for _, tx := range scoped {
		cum := running[tx.ItemID].Add(tx.Amount)
		running[tx.ItemID] = cum
		day := DateOf(tx.Timestamp, loc)
		if lastOfDay[day] == nil {
			lastOfDay[day] = make(map[string]decimal.Decimal)
		}
		lastOfDay[day][tx.ItemID] = cum
	}

	columns := make([]SeriesColumn, 0, len(running))
	for id := range running {
		columns = append(columns, SeriesColumn{ItemID: id, Name: byID[id].Name})
	}
	sort.Slice(columns, func(i, j int) bool {
		if columns[i].Name != columns[j].Name {
			return columns[i].Name < columns[j].Name
		}
		return columns[i].ItemID < columns[j].ItemID
	})

	first := DateOf(scoped[0].Timestamp, loc)
	last := DateOf(scoped[len(scoped)-1].Timestamp, loc)

	carried := make([]decimal.NullDecimal, len(columns))
	rows := make([]SeriesRow, 0, daysBetween(first, last)+1)
	for day := first; !day.After(last); day = day.AddDays(1) {
		if values, ok := lastOfDay[day]; ok {
			for i, c := range columns {
				if v, ok := values[c.ItemID]; ok {
					carried[i] = decimal.NullDecimal{Decimal: v, Valid: true}
				}
			}
		}
		row := SeriesRow{Date: day, Values: make([]decimal.NullDecimal, len(columns))}
		copy(row.Values, carried)
		rows = append(rows, row)
	}

	return DailySeries{Columns: columns, Rows: rows}
}

func daysBetween(a, b Date) int {
	return int(b.Time(time.UTC).Sub(a.Time(time.UTC)).Hours() / 24)
}
