package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord es un abono aplicado a un plan de crédito. Es append-only:
// nunca se modifica ni se elimina una vez aceptado.
type PaymentRecord struct {
	ID        string
	PlanID    string
	Amount    decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}
