package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// CreditPlanRepository define el puerto de persistencia para planes de
// crédito. El plan es el único recurso compartido entre sesiones; las
// mutaciones de saldo pasan por GetByIDForUpdate dentro de una transacción.
type CreditPlanRepository interface {
	Create(plan *entity.CreditPlan) error
	GetByID(id string) (*entity.CreditPlan, error)
	GetBySaleID(saleID string) (*entity.CreditPlan, error)
	// GetByIDForUpdate bloquea la fila del plan (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.CreditPlan, error)
	// UpdateBalance escribe saldo, estado y updated_at del plan.
	UpdateBalance(plan *entity.CreditPlan) error
}
