package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	domainsale "github.com/tu-usuario/ventas-pos/internal/domain/sale"
)

// SaleHandler maneja la emisión y consulta de ventas.
type SaleHandler struct {
	finalizeUC    *sales.FinalizeSaleUseCase
	comprobanteUC *sales.ComprobanteUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(finalizeUC *sales.FinalizeSaleUseCase, comprobanteUC *sales.ComprobanteUseCase) *SaleHandler {
	return &SaleHandler{finalizeUC: finalizeUC, comprobanteUC: comprobanteUC}
}

// Create valida y emite una venta (con plan de crédito si la forma de pago
// es crédito).
// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.finalizeUC.FinalizeSale(c.Context(), in)
	if err != nil {
		var vErr *domainsale.ValidationError
		switch {
		case errors.As(err, &vErr):
			// Todos los mensajes de validación juntos, no solo el primero.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "la venta no pasó la validación",
				Details: vErr.Messages,
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		case errors.Is(err, domain.ErrInvalidPlan):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PLAN", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID obtiene la venta completa con líneas y plan de crédito.
// GET /api/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	resp, err := h.finalizeUC.GetSale(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// PDF descarga el comprobante impreso.
// GET /api/sales/:id/pdf
func (h *SaleHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.comprobanteUC.PDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprobante-`+id+`.pdf"`)
	return c.Send(data)
}

// XML descarga la representación XML de archivo fiscal.
// GET /api/sales/:id/xml
func (h *SaleHandler) XML(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.comprobanteUC.XML(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}
