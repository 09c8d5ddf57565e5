package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/appointments"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// AppointmentHandler maneja las peticiones HTTP de citas de reabastecimiento (protegido).
type AppointmentHandler struct {
	uc *appointments.UseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *appointments.UseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Schedule godoc
// @Summary      Agendar cita de reabastecimiento
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScheduleAppointmentRequest  true  "supplier, date, time, items"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Schedule(c *fiber.Ctx) error {
	var in dto.ScheduleAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Schedule(GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "proveedor, fecha, hora y al menos un renglón con cantidad positiva son requeridos"})
		}
		return respondUnexpected(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar citas (orden cronológico por fecha y hora)
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.AppointmentListResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	resp, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener cita por ID
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondUnexpected(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar cita (solo en estado pending o confirmed)
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cita"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "campos a modificar"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidState) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "la cita ya está en un estado terminal"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return respondUnexpected(c, err)
	}
	return c.JSON(resp)
}

// Complete godoc
// @Summary      Completar cita y aplicar el reabastecimiento
// @Description  Suma las unidades de cada renglón al stock y escribe las filas IN
//
//	del libro de transacciones como una sola unidad atómica.
//
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.CompleteAppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *fiber.Ctx) error {
	result, err := h.uc.Complete(c.Context(), c.Params("id"), GetActor(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita o artículo no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidState) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "la cita no admite completarse desde su estado actual"})
		}
		return respondUnexpected(c, err)
	}
	return c.JSON(dto.CompleteAppointmentResponse{
		Message:        "Appointment completed successfully",
		ItemsRestocked: result.ItemsRestocked,
		TotalUnits:     result.TotalUnits,
	})
}

// Cancel godoc
// @Summary      Cancelar cita
// @Description  Cambia el estado a cancelled. No modifica stock ni el libro.
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	err := h.uc.Cancel(c.Context(), c.Params("id"), GetActor(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidState) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "la cita no admite cancelarse desde su estado actual"})
		}
		return respondUnexpected(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Appointment cancelled successfully"})
}

// respondUnexpected mapea errores no manejados: persistencia caída → 503,
// cualquier otro → 500 sin filtrar detalles internos.
func respondUnexpected(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrPersistenceUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: "almacenamiento no disponible, intente de nuevo"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
