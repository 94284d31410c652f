package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // zona del estoque disponible aunque la imagen no traiga /usr/share/zoneinfo

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/estoque-api/docs"
	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/report"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/estoque-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// @title        Estoque API
// @version      1.0
// @description  Livro-razão de estoque: saldos por ítem, movimentações, série diária e relatório PDF.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	loc, err := cfg.Ledger.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria del estoque")
	}

	log.Info().
		Str("env", cfg.App.Env).
		Str("timezone", loc.String()).
		Bool("allow_negative_balance", cfg.Ledger.AllowNegativeBalance).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := postgres.NewPool(ctx, cfg.Store)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)

	stockUC := inventory.NewStockUseCase(itemRepo, txRepo, personRepo, projectRepo, log.Component("stock"))
	recordUC := inventory.NewRecordMovementUseCase(itemRepo, txRepo, loc, cfg.Ledger.AllowNegativeBalance, log.Component("movements")).
		WithTxRunner(postgres.NewTxRunner(pool))
	seriesUC := analytics.NewSeriesUseCase(itemRepo, txRepo, infraxlsx.NewSeriesExporter(), loc)
	reportUC := report.NewDailyReportUseCase(
		itemRepo, txRepo, personRepo, infrapdf.NewReportGenerator(),
		cfg.Report.Title, loc, log.Component("report"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swaggerUI(cfg.App.Name))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:        cfg.App.Name,
		Stock:          stockUC,
		RecordMovement: recordUC,
		Series:         seriesUC,
		DailyReport:    reportUC,
		Log:            log.Component("http"),
	})

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("apagando servidor...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("servidor detenido")
}

// swaggerUI sirve la UI en /docs y el documento en /docs/swagger.json.
// El documento sale del paquete docs (swag init), no del disco.
func swaggerUI(title string) fiber.Handler {
	return swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "./docs/swagger.json",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       title,
	})
}
