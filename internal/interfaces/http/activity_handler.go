package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

// ActivityHandler expone la bitácora de actividad (solo lectura, protegido).
type ActivityHandler struct {
	ledger *usecase.LedgerUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(ledger *usecase.LedgerUseCase) *ActivityHandler {
	return &ActivityHandler{ledger: ledger}
}

// List godoc
// @Summary      Listar la bitácora de actividad (más recientes primero)
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.ActivityLogResponse
// @Router       /api/activity-logs [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	list, err := h.ledger.ListActivity(page.Limit, page.Offset)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "activity": list})
}
