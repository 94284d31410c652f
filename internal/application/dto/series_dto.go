package dto

import "github.com/shopspring/decimal"

// SeriesColumnDTO columna (ítem) de la serie diaria.
type SeriesColumnDTO struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// SeriesRowDTO saldo acumulado al cierre del día; null antes de la primera transacción del ítem.
type SeriesRowDTO struct {
	Date   string                `json:"date"`
	Values []decimal.NullDecimal `json:"values" swaggertype:"array,string"`
}

// DailySeriesDTO respuesta de GET /api/series/daily.
type DailySeriesDTO struct {
	Columns []SeriesColumnDTO `json:"columns"`
	Rows    []SeriesRowDTO    `json:"rows"`
}

// CandleDTO vela diaria para el gráfico de un ítem.
type CandleDTO struct {
	Date  string          `json:"date"`
	Open  decimal.Decimal `json:"open" swaggertype:"string" example:"12.5"`
	Close decimal.Decimal `json:"close" swaggertype:"string" example:"12.5"`
	Delta decimal.Decimal `json:"delta" swaggertype:"string" example:"12.5"`
}
