package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
// La tabla es append-only: no hay UPDATE ni DELETE.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un abono.
func (r *PaymentRepo) Create(payment *entity.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (id, plan_id, amount, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.PlanID, payment.Amount, payment.Date,
		nullIfEmpty(payment.Notes), payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment record: %w", err)
	}
	return nil
}

// ListByPlanID obtiene el historial de abonos, el más reciente primero.
func (r *PaymentRepo) ListByPlanID(planID string) ([]*entity.PaymentRecord, error) {
	query := `
		SELECT id, plan_id, amount, date, notes, created_at
		FROM payment_records
		WHERE plan_id = $1
		ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, planID)
	if err != nil {
		return nil, fmt.Errorf("list payment records: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentRecord
	for rows.Next() {
		var p entity.PaymentRecord
		var notes *string
		if err := rows.Scan(&p.ID, &p.PlanID, &p.Amount, &p.Date, &notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		p.Notes = derefStr(notes)
		list = append(list, &p)
	}
	return list, rows.Err()
}
