package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
)

// SeriesHandler series diarias para gráficos y exportación.
type SeriesHandler struct {
	uc  *analytics.SeriesUseCase
	log zerolog.Logger
}

// NewSeriesHandler construye el handler.
func NewSeriesHandler(uc *analytics.SeriesUseCase, log zerolog.Logger) *SeriesHandler {
	return &SeriesHandler{uc: uc, log: log}
}

// Daily godoc
// @Summary      Serie diaria de saldos (fechas x ítems)
// @Tags         series
// @Produce      json
// @Param        item_id  query  string  false  "Restringir a un ítem"
// @Success      200  {object}  dto.DailySeriesDTO
// @Router       /api/series/daily [get]
func (h *SeriesHandler) Daily(c *fiber.Ctx) error {
	out, err := h.uc.DailySeries(c.UserContext(), c.Query("item_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Candles godoc
// @Summary      Velas diarias de un ítem (abre en el cierre anterior)
// @Tags         series
// @Produce      json
// @Param        item_id  query  string  true  "Ítem"
// @Success      200  {array}   dto.CandleDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/series/candles [get]
func (h *SeriesHandler) Candles(c *fiber.Ctx) error {
	out, err := h.uc.Candles(c.UserContext(), c.Query("item_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DailyXLSX godoc
// @Summary      Serie diaria como planilla Excel
// @Tags         series
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        item_id  query  string  false  "Restringir a un ítem"
// @Success      200
// @Router       /api/series/daily.xlsx [get]
func (h *SeriesHandler) DailyXLSX(c *fiber.Ctx) error {
	data, err := h.uc.ExportXLSX(c.UserContext(), c.Query("item_id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="saldo_diario.xlsx"`)
	return c.Send(data)
}
