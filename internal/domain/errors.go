package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Reglas de negocio del crédito. Fallas estructuradas que el caller puede
	// mostrar al usuario; nunca abortan el proceso.
	ErrInvalidPlan       = errors.New("plan de crédito inválido: la cuota inicial excede el total")
	ErrPlanAlreadyExists = errors.New("la venta ya tiene un plan de crédito activo")
	ErrInvalidPayment    = errors.New("abono inválido")
	ErrPlanSettled       = errors.New("el plan de crédito ya está saldado")
)
