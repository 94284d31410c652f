package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName        string
	Stock          *inventory.StockUseCase
	RecordMovement *inventory.RecordMovementUseCase
	Series         *analytics.SeriesUseCase
	DailyReport    *report.DailyReportUseCase
	Log            zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	stockHandler := NewStockHandler(deps.Stock, deps.RecordMovement, deps.Log)
	api.Get("/items/balances", stockHandler.Balances)
	api.Get("/movements/recent", stockHandler.RecentMovements)
	api.Post("/movements", stockHandler.RecordMovement)
	api.Get("/people", stockHandler.People)
	api.Get("/projects", stockHandler.Projects)

	series := api.Group("/series")
	seriesHandler := NewSeriesHandler(deps.Series, deps.Log)
	series.Get("/daily", seriesHandler.Daily)
	series.Get("/daily.xlsx", seriesHandler.DailyXLSX)
	series.Get("/candles", seriesHandler.Candles)

	reportHandler := NewReportHandler(deps.DailyReport, deps.Log)
	api.Get("/reports/daily", reportHandler.Daily)
}
