// Package pdf implementa el reporte diario de estoque con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título  │  Data + Gerado em                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MOVIMENTAÇÕES DO DIA                                       │
//	│  Hora | Item | Tipo | Qtd | Un. | Observação | Autor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALDO ATUAL POR SETOR                                      │
//	│    <setor>                                                  │
//	│    Item | Unidade | Saldo                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estoque-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorHeader  = &props.Color{Red: 225, Green: 232, Blue: 240}
)

var _ report.ReportRenderer = (*ReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa report.ReportRenderer usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// RenderDailyReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) RenderDailyReport(_ context.Context, data *report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(pdfText(data.Title), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Movimentações do dia"))
	m.AddRows(movementsHeaderRow())
	if len(data.Movements) == 0 {
		m.AddRows(emptyRow("Nenhuma movimentação registrada neste dia."))
	}
	for _, r := range movementRows(data.Movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Saldo atual por setor"))
	if len(data.Sectors) == 0 {
		m.AddRows(emptyRow("Nenhum item cadastrado."))
	}
	for _, s := range data.Sectors {
		m.AddRows(sectorRows(s)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data *report.Data) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(pdfText(data.Title), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Data: "+data.Day.Time(data.GeneratedAt.Location()).Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Gerado em "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(pdfText(label), props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3,
		}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(pdfText(msg), props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(pdfText(label), props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(pdfText(truncate(value, maxCellRunes)), props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func movementsHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Hora", 1, align.Left),
		headerCell("Item", 3, align.Left),
		headerCell("Tipo", 1, align.Left),
		headerCell("Qtd.", 1, align.Right),
		headerCell("Un.", 1, align.Left),
		headerCell("Observação", 3, align.Left),
		headerCell("Autor", 2, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorHeader})
}

func movementRows(lines []report.MovementLine) []core.Row {
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row.New(6).Add(
			cell(l.Time.Format("15:04"), 1, align.Left),
			cell(l.ItemName, 3, align.Left),
			cell(l.Type, 1, align.Left),
			cell(l.Amount.String(), 1, align.Right),
			cell(l.Unit, 1, align.Left),
			cell(l.Observation, 3, align.Left),
			cell(l.Author, 2, align.Left),
		))
	}
	return out
}

func sectorRows(s report.SectorSection) []core.Row {
	name := s.Sector
	if name == "" {
		name = "Sem setor"
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(pdfText(truncate(name, maxCellRunes)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2.5, Left: 1,
			}),
		)),
		row.New(7).Add(
			headerCell("Item", 6, align.Left),
			headerCell("Unidade", 2, align.Left),
			headerCell("Saldo", 4, align.Right),
		).WithStyle(&props.Cell{BackgroundColor: colorHeader}),
	}
	for _, b := range s.Balances {
		rows = append(rows, row.New(6).Add(
			cell(b.Item.Name, 6, align.Left),
			cell(b.Item.Unit, 2, align.Left),
			cell(b.Balance.String(), 4, align.Right),
		))
	}
	return rows
}
