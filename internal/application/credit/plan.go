package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// NewPlanForSale construye el plan de crédito de una venta ya persistida.
// La cuota inicial debe estar en [0, total]; si no, ErrInvalidPlan. El saldo
// inicial es total − cuota inicial; si queda en cero el plan nace saldado.
func NewPlanForSale(sale *entity.Sale, termDays int, downPayment decimal.Decimal, now time.Time) (*entity.CreditPlan, error) {
	if downPayment.IsNegative() || downPayment.GreaterThan(sale.Total) {
		return nil, domain.ErrInvalidPlan
	}
	if termDays < 0 {
		return nil, domain.ErrInvalidPlan
	}
	balance := sale.Total.Sub(downPayment)
	status := entity.PlanStatusOpen
	if balance.IsZero() {
		status = entity.PlanStatusSettled
	}
	return &entity.CreditPlan{
		ID:          uuid.New().String(),
		SaleID:      sale.ID,
		TermDays:    termDays,
		DownPayment: downPayment,
		Balance:     balance,
		DueDate:     sale.Date.AddDate(0, 0, termDays),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
