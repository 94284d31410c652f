package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/domain/ledger"
)

// ReportHandler reporte diario en PDF.
type ReportHandler struct {
	uc  *report.DailyReportUseCase
	log zerolog.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.DailyReportUseCase, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Daily godoc
// @Summary      Relatório diário de estoque (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Param        date  query  string  false  "YYYY-MM-DD (default: hoy en la zona del estoque)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	day := h.uc.Today()
	if raw := c.Query("date"); raw != "" {
		d, err := ledger.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		day = d
	}

	doc, filename, err := h.uc.Render(c.UserContext(), day)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(doc)
}
