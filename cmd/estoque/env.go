package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/report"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/estoque-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// env casos de uso listos para un subcomando. Close libera el pool.
type env struct {
	pool   *pgxpool.Pool
	stock  *inventory.StockUseCase
	series *analytics.SeriesUseCase
	report *report.DailyReportUseCase
}

// openEnv carga la configuración y conecta al almacén; los logs van a stderr.
func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "estoque", Out: os.Stderr})

	dialCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(dialCtx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("conexión al almacén: %w", err)
	}

	itemRepo := postgres.NewItemRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)

	return &env{
		pool:   pool,
		stock:  inventory.NewStockUseCase(itemRepo, txRepo, personRepo, projectRepo, log.Component("stock")),
		series: analytics.NewSeriesUseCase(itemRepo, txRepo, infraxlsx.NewSeriesExporter(), loc),
		report: report.NewDailyReportUseCase(itemRepo, txRepo, personRepo, infrapdf.NewReportGenerator(),
			cfg.Report.Title, loc, log.Component("report")),
	}, nil
}

func (e *env) Close() { e.pool.Close() }
