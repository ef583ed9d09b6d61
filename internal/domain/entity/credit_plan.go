package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del plan de crédito.
// open -> partially_paid -> settled. settled es terminal: con saldo cero no
// se aceptan más abonos.
const (
	PlanStatusOpen          = "open"
	PlanStatusPartiallyPaid = "partially_paid"
	PlanStatusSettled       = "settled"
)

// CreditPlan es el registro de crédito de una venta: monto original, cuota
// inicial, saldo pendiente y plazo. El saldo es la única fuente de verdad
// del monto adeudado; solo lo muta el registro de abonos.
type CreditPlan struct {
	ID          string
	SaleID      string
	TermDays    int
	DownPayment decimal.Decimal
	Balance     decimal.Decimal
	DueDate     time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Settled indica si el plan ya no admite abonos.
func (p *CreditPlan) Settled() bool {
	return p.Status == PlanStatusSettled
}
