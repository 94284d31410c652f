package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

// Candle vela diaria del gráfico de un ítem: abre en el cierre del día anterior.
type Candle struct {
	Date  ledger.Date
	Open  decimal.Decimal
	Close decimal.Decimal
}

// Delta variación del día.
func (c Candle) Delta() decimal.Decimal { return c.Close.Sub(c.Open) }

// BuildCandles convierte la columna del ítem en velas. Es una convención de presentación:
// el primer punto no tiene cierre anterior y se dibuja con apertura 0 (solo ese punto).
// Las fechas anteriores a la primera transacción del ítem no generan vela.
func BuildCandles(series ledger.DailySeries, itemID string) []Candle {
	col := series.ColumnIndex(itemID)
	if col < 0 {
		return []Candle{}
	}
	out := make([]Candle, 0, len(series.Rows))
	var prev decimal.NullDecimal
	for _, row := range series.Rows {
		v := row.Values[col]
		if !v.Valid {
			continue
		}
		open := decimal.Zero
		if prev.Valid {
			open = prev.Decimal
		}
		out = append(out, Candle{Date: row.Date, Open: open, Close: v.Decimal})
		prev = v
	}
	return out
}
