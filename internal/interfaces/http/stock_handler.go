package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

// StockHandler saldos, movimientos y tablas de referencia.
type StockHandler struct {
	stock    *inventory.StockUseCase
	recorder *inventory.RecordMovementUseCase
	log      zerolog.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *inventory.StockUseCase, recorder *inventory.RecordMovementUseCase, log zerolog.Logger) *StockHandler {
	return &StockHandler{stock: stock, recorder: recorder, log: log}
}

// Balances godoc
// @Summary      Saldo actual por ítem
// @Tags         stock
// @Produce      json
// @Param        sector  query  string  false  "Filtrar por sector"
// @Success      200  {array}   dto.ItemBalanceDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/items/balances [get]
func (h *StockHandler) Balances(c *fiber.Ctx) error {
	out, err := h.stock.Balances(c.UserContext(), c.Query("sector"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RecentMovements godoc
// @Summary      Últimos movimientos (más recientes primero)
// @Tags         stock
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (default 10, máx 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/recent [get]
func (h *StockHandler) RecentMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if resp := parseQuery(c, &page); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	page.DefaultPage()

	list, err := h.stock.RecentMovements(c.UserContext(), page.Limit)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"total":     len(list),
		"movements": list,
	})
}

// RecordMovement godoc
// @Summary      Registrar movimentação (Entrada, Saída o Contagem inicial)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "item_id, quantity, kind, observation, author_id"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if resp := parseBody(c, &in); resp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	tx, err := h.recorder.RecordMovement(c.UserContext(), inventory.RecordMovementInput{
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		Kind:        in.Kind,
		Observation: in.Observation,
		AuthorID:    in.AuthorID,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inventory.ToTransactionResponse(tx))
}

// People godoc
// @Summary      Personas (autores de movimientos)
// @Tags         reference
// @Produce      json
// @Success      200  {array}  dto.ReferenceDTO
// @Router       /api/people [get]
func (h *StockHandler) People(c *fiber.Ctx) error {
	return c.JSON(h.stock.People(c.UserContext()))
}

// Projects godoc
// @Summary      Proyectos (observaciones predefinidas)
// @Tags         reference
// @Produce      json
// @Success      200  {array}  dto.ReferenceDTO
// @Router       /api/projects [get]
func (h *StockHandler) Projects(c *fiber.Ctx) error {
	return c.JSON(h.stock.Projects(c.UserContext()))
}
