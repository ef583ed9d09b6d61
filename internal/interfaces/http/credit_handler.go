package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pos/internal/application/credit"
	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
)

// CreditHandler maneja planes de crédito y abonos.
type CreditHandler struct {
	uc *credit.CreditUseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *credit.CreditUseCase) *CreditHandler {
	return &CreditHandler{uc: uc}
}

// CreatePlan crea el plan de crédito de una venta ya emitida.
// POST /api/credit-plans
func (h *CreditHandler) CreatePlan(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.CreatePlan(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sale_id requerido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		case errors.Is(err, domain.ErrInvalidPlan):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PLAN", Message: err.Error()})
		case errors.Is(err, domain.ErrPlanAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLAN_EXISTS", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// GetPlan obtiene el plan con su historial de abonos.
// GET /api/credit-plans/:id
func (h *CreditHandler) GetPlan(c *fiber.Ctx) error {
	res, err := h.uc.GetPlan(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plan no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// RecordPayment registra un abono contra el plan.
// POST /api/credit-plans/:id/payments
func (h *CreditHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		date = parsed
	}
	res, err := h.uc.RecordPayment(c.Context(), c.Params("id"), in.Amount, date, in.Notes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plan no encontrado"})
		case errors.Is(err, domain.ErrInvalidPayment):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAYMENT", Message: "el abono debe ser mayor a cero y no exceder el saldo"})
		case errors.Is(err, domain.ErrPlanSettled):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PLAN_SETTLED", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// ListPayments obtiene el historial de abonos, el más reciente primero.
// GET /api/credit-plans/:id/payments
func (h *CreditHandler) ListPayments(c *fiber.Ctx) error {
	res, err := h.uc.ListPayments(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plan no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// ListLegacyBySale obtiene los registros del esquema de crédito antiguo de
// una venta (vacío si esta instalación no lo tiene).
// GET /api/sales/:id/legacy-credits
func (h *CreditHandler) ListLegacyBySale(c *fiber.Ctx) error {
	res, err := h.uc.ListLegacyBySale(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}
