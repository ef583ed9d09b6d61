package credit

import (
	"context"

	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// PlanTxRunner ejecuta la creación de un plan dentro de una transacción:
// verificación de duplicado e inserción como una sola unidad.
type PlanTxRunner interface {
	RunPlan(ctx context.Context, fn func(planRepo repository.CreditPlanRepository) error) error
}

// PaymentTxRunner ejecuta el registro de un abono como una sola unidad
// read-modify-write: leer el saldo con bloqueo de fila, validar, insertar el
// abono y escribir el nuevo saldo. Dos abonos concurrentes sobre el mismo
// plan no pueden perder actualizaciones.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		planRepo repository.CreditPlanRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
