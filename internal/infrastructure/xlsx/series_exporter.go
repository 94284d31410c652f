// Package xlsx exporta la serie diaria de saldos como planilla Excel.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

// SheetName hoja única de la planilla.
const SheetName = "Saldo diário"

var _ analytics.SeriesExporter = (*SeriesExporter)(nil)

// SeriesExporter implementa analytics.SeriesExporter con excelize.
// Primera columna la fecha, luego una columna por ítem; celdas previas al primer movimiento quedan vacías.
type SeriesExporter struct{}

// NewSeriesExporter construye el exportador.
func NewSeriesExporter() *SeriesExporter { return &SeriesExporter{} }

// ExportDailySeries escribe la tabla pivote y devuelve los bytes del .xlsx.
func (e *SeriesExporter) ExportDailySeries(_ context.Context, s ledger.DailySeries) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}

	header := make([]any, 0, len(s.Columns)+1)
	header = append(header, "Data")
	for _, c := range s.Columns {
		header = append(header, c.Name)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	for i, r := range s.Rows {
		rowNo := i + 2
		dateCell, err := excelize.CoordinatesToCellName(1, rowNo)
		if err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", rowNo, err)
		}
		// ISO como texto: el orden lexicográfico coincide con el cronológico
		if err := f.SetCellStr(SheetName, dateCell, r.Date.String()); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", rowNo, err)
		}

		for j, v := range r.Values {
			if !v.Valid {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, rowNo)
			if err != nil {
				return nil, fmt.Errorf("xlsx: fila %d columna %d: %w", rowNo, j+2, err)
			}
			if err := f.SetCellValue(SheetName, cell, v.Decimal.InexactFloat64()); err != nil {
				return nil, fmt.Errorf("xlsx: celda %s: %w", cell, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}
	if len(s.Columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(s.Columns) + 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: columna %d: %w", len(s.Columns)+1, err)
		}
		if err := f.SetColWidth(SheetName, "B", last, 18); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, XSplit: 1, YSplit: 1, TopLeftCell: "B2", ActivePane: "bottomRight"}); err != nil {
		return nil, fmt.Errorf("xlsx: paneles: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
