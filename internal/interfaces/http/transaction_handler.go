package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// TransactionHandler maneja el libro de transacciones: movimientos directos,
// listados y el reporte PDF (protegido).
type TransactionHandler struct {
	record *inventory.RecordTransactionUseCase
	ledger *usecase.LedgerUseCase
	report *reports.LedgerReportUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(
	record *inventory.RecordTransactionUseCase,
	ledger *usecase.LedgerUseCase,
	report *reports.LedgerReportUseCase,
) *TransactionHandler {
	return &TransactionHandler{record: record, ledger: ledger, report: report}
}

// Record godoc
// @Summary      Registrar movimiento directo de stock (IN/OUT)
// @Description  Ajusta la cantidad y escribe la fila inmutable del libro en una
//
//	sola transacción.
//
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "item_id, direction, quantity, reason"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.record.Record(c.Context(), GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id, dirección IN|OUT y cantidad positiva son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		}
		return respondUnexpected(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar el libro de transacciones (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo de filas (default 50)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de página inválidos"})
	}
	page.DefaultPage()
	resp, err := h.ledger.ListTransactions(page.Limit, page.Offset)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return c.JSON(resp)
}

// ListByItem godoc
// @Summary      Historial cronológico de un artículo
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del artículo"
// @Param        from  query  string  false  "Fecha inicial (RFC 3339 o 2006-01-02)"
// @Param        to    query  string  false  "Fecha final (RFC 3339 o 2006-01-02)"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/transactions [get]
func (h *TransactionHandler) ListByItem(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida"})
	}
	list, err := h.ledger.ListItemTransactions(c.Params("id"), from, to)
	if err != nil {
		return respondUnexpected(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "transactions": list})
}

// DownloadReport godoc
// @Summary      Descargar el libro de transacciones en PDF
// @Tags         transactions
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transactions/report [get]
func (h *TransactionHandler) DownloadReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.DownloadLedgerPDF(c.Context())
	if err != nil {
		return respondUnexpected(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// parseTimeQuery acepta RFC 3339 o fecha simple 2006-01-02. Vacío devuelve nil.
func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
