package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para abonos. Los abonos
// son append-only: solo se insertan y se listan.
type PaymentRepository interface {
	Create(payment *entity.PaymentRecord) error
	// ListByPlanID devuelve el historial de abonos, el más reciente primero.
	ListByPlanID(planID string) ([]*entity.PaymentRecord, error)
}
