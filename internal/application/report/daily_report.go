// Package report arma el reporte diario de estoque: movimentações del día y saldo actual
// agrupado por sector.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementLine fila de la sección "movimentações do dia".
type MovementLine struct {
	Time        time.Time // en la zona del estoque
	ItemName    string
	Unit        string
	Type        string
	Amount      decimal.Decimal
	Observation string
	Author      string
}

// SectorSection saldos de un sector, en el orden en que aparecen los ítems.
type SectorSection struct {
	Sector   string
	Balances []ledger.ItemBalance
}

// Data contenido completo del reporte, independiente del formato.
type Data struct {
	Title       string
	Day         ledger.Date
	GeneratedAt time.Time
	Movements   []MovementLine
	Sectors     []SectorSection
}

// DailyReportUseCase construye y renderiza el reporte diario.
type DailyReportUseCase struct {
	itemRepo   repository.ItemRepository
	txRepo     repository.TransactionRepository
	personRepo repository.PersonRepository
	renderer   ReportRenderer
	title      string
	loc        *time.Location
	now        func() time.Time
	log        zerolog.Logger
}

// NewDailyReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewDailyReportUseCase(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	personRepo repository.PersonRepository,
	renderer ReportRenderer,
	title string,
	loc *time.Location,
	log zerolog.Logger,
) *DailyReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DailyReportUseCase{
		itemRepo:   itemRepo,
		txRepo:     txRepo,
		personRepo: personRepo,
		renderer:   renderer,
		title:      title,
		loc:        loc,
		now:        time.Now,
		log:        log,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *DailyReportUseCase) WithClock(now func() time.Time) *DailyReportUseCase {
	uc.now = now
	return uc
}

// Today fecha actual en la zona del estoque.
func (uc *DailyReportUseCase) Today() ledger.Date {
	return ledger.DateOf(uc.now(), uc.loc)
}

// Build arma los datos del reporte del día indicado.
func (uc *DailyReportUseCase) Build(ctx context.Context, day ledger.Date) (*Data, error) {
	snap, err := inventory.LoadSnapshot(ctx, uc.itemRepo, uc.txRepo)
	if err != nil {
		return nil, err
	}

	var authors map[string]string
	if people, err := uc.personRepo.List(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("reporte: personas no disponibles, se omite el autor")
	} else {
		authors = inventory.PersonNames(people)
	}

	items := make(map[string]entity.Item, len(snap.Items))
	for _, it := range snap.Items {
		items[it.ID] = it
	}

	// ── 1. Movimentações do dia ───────────────────────────────────────────────
	todays := ledger.TransactionsOn(snap.Transactions, day, uc.loc)
	sort.SliceStable(todays, func(i, j int) bool {
		return todays[i].Timestamp.Before(todays[j].Timestamp)
	})
	movements := make([]MovementLine, 0, len(todays))
	orphans := 0
	for _, tx := range todays {
		it, ok := items[tx.ItemID]
		if !ok {
			// huérfanas: igual que en ComputeBalances, no se muestran
			orphans++
			continue
		}
		line := MovementLine{
			Time:     tx.Timestamp.In(uc.loc),
			ItemName: it.Name,
			Unit:     it.Unit,
			Type:     tx.TransactionType,
			Amount:   tx.Amount,
		}
		if tx.Observation != nil {
			line.Observation = *tx.Observation
		}
		if tx.AuthorID != nil {
			line.Author = authors[*tx.AuthorID]
		}
		movements = append(movements, line)
	}
	if orphans > 0 {
		uc.log.Warn().Int("orphans", orphans).Str("day", day.String()).Msg("reporte: movimientos de ítems inexistentes omitidos")
	}

	// ── 2. Saldo actual por sector ────────────────────────────────────────────
	sectors := GroupBySector(ledger.ComputeBalances(snap.Items, snap.Transactions))

	return &Data{
		Title:       uc.title,
		Day:         day,
		GeneratedAt: uc.now().In(uc.loc),
		Movements:   movements,
		Sectors:     sectors,
	}, nil
}

// Render arma el reporte y lo pasa al renderer. Devuelve los bytes y un nombre de archivo.
func (uc *DailyReportUseCase) Render(ctx context.Context, day ledger.Date) (doc []byte, filename string, err error) {
	data, err := uc.Build(ctx, day)
	if err != nil {
		return nil, "", err
	}
	doc, err = uc.renderer.RenderDailyReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	uc.log.Info().
		Str("day", day.String()).
		Int("movements", len(data.Movements)).
		Int("sectors", len(data.Sectors)).
		Msg("reporte diario generado")
	return doc, fmt.Sprintf("relatorio_estoque_%s.pdf", day.String()), nil
}

// GroupBySector agrupa saldos por sector en el orden en que cada sector aparece por primera vez.
func GroupBySector(balances []ledger.ItemBalance) []SectorSection {
	index := make(map[string]int)
	out := make([]SectorSection, 0)
	for _, b := range balances {
		i, ok := index[b.Item.Sector]
		if !ok {
			i = len(out)
			index[b.Item.Sector] = i
			out = append(out, SectorSection{Sector: b.Item.Sector})
		}
		out[i].Balances = append(out[i].Balances, b)
	}
	return out
}
