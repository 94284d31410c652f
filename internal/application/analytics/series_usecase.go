// Package analytics contiene los casos de uso del gráfico de estoque: serie diaria de saldos
// acumulados por ítem, velas y exportación a planilla.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// SeriesUseCase construye la serie diaria a partir de la foto completa de ítems y transacciones.
type SeriesUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
	exporter SeriesExporter
	loc      *time.Location
}

// NewSeriesUseCase construye el caso de uso. exporter puede ser nil si no se exporta a planilla.
func NewSeriesUseCase(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	exporter SeriesExporter,
	loc *time.Location,
) *SeriesUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &SeriesUseCase{itemRepo: itemRepo, txRepo: txRepo, exporter: exporter, loc: loc}
}

// Series devuelve la serie del motor. itemID vacío = todos los ítems.
func (uc *SeriesUseCase) Series(ctx context.Context, itemID string) (ledger.DailySeries, error) {
	snap, err := inventory.LoadSnapshot(ctx, uc.itemRepo, uc.txRepo)
	if err != nil {
		return ledger.DailySeries{}, err
	}
	var filter *string
	if itemID != "" {
		filter = &itemID
	}
	return ledger.BuildDailySeries(snap.Items, snap.Transactions, filter, uc.loc), nil
}

// DailySeries devuelve la tabla pivotada lista para el gráfico. Sin datos devuelve tabla vacía.
func (uc *SeriesUseCase) DailySeries(ctx context.Context, itemID string) (*dto.DailySeriesDTO, error) {
	s, err := uc.Series(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return ToDailySeriesDTO(s), nil
}

// Candles devuelve las velas de un ítem. itemID es obligatorio.
func (uc *SeriesUseCase) Candles(ctx context.Context, itemID string) ([]dto.CandleDTO, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item_id requerido", domain.ErrInvalidInput)
	}
	s, err := uc.Series(ctx, itemID)
	if err != nil {
		return nil, err
	}
	candles := BuildCandles(s, itemID)
	out := make([]dto.CandleDTO, 0, len(candles))
	for _, c := range candles {
		out = append(out, dto.CandleDTO{
			Date:  c.Date.String(),
			Open:  c.Open,
			Close: c.Close,
			Delta: c.Delta(),
		})
	}
	return out, nil
}

// ExportXLSX genera la planilla de la serie diaria.
func (uc *SeriesUseCase) ExportXLSX(ctx context.Context, itemID string) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("exportador de planilla no configurado")
	}
	s, err := uc.Series(ctx, itemID)
	if err != nil {
		return nil, err
	}
	data, err := uc.exporter.ExportDailySeries(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("exportar serie: %w", err)
	}
	return data, nil
}

// ToDailySeriesDTO proyecta la serie al esquema JSON.
func ToDailySeriesDTO(s ledger.DailySeries) *dto.DailySeriesDTO {
	out := &dto.DailySeriesDTO{
		Columns: make([]dto.SeriesColumnDTO, 0, len(s.Columns)),
		Rows:    make([]dto.SeriesRowDTO, 0, len(s.Rows)),
	}
	for _, c := range s.Columns {
		out.Columns = append(out.Columns, dto.SeriesColumnDTO{ItemID: c.ItemID, Name: c.Name})
	}
	for _, r := range s.Rows {
		out.Rows = append(out.Rows, dto.SeriesRowDTO{Date: r.Date.String(), Values: r.Values})
	}
	return out
}
