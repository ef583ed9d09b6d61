package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain"
)

// CustomerHandler maneja el directorio de clientes.
type CustomerHandler struct {
	uc *sales.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *sales.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create registra un cliente nuevo.
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List lista o busca clientes (?q= busca por nombre o identificación fiscal).
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	res, err := h.uc.List(c.Context(), c.Query("q"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}
