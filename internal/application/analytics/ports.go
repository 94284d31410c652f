package analytics

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

// SeriesExporter puerto para exportar la serie diaria a planilla (implementado en infrastructure/xlsx).
type SeriesExporter interface {
	ExportDailySeries(ctx context.Context, series ledger.DailySeries) ([]byte, error)
}
