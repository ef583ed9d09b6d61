package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.CreditPlanRepository = (*CreditPlanRepo)(nil)

// CreditPlanRepo implementación de CreditPlanRepository (usable con pool o
// tx).
type CreditPlanRepo struct {
	q Querier
}

// NewCreditPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditPlanRepository(q Querier) *CreditPlanRepo {
	return &CreditPlanRepo{q: q}
}

const planColumns = `id, sale_id, term_days, down_payment, balance, due_date, status, created_at, updated_at`

// Create persiste el plan. La constraint única sobre sale_id respalda la
// regla de un plan activo por venta aun si dos sesiones la compiten.
func (r *CreditPlanRepo) Create(plan *entity.CreditPlan) error {
	query := `
		INSERT INTO credit_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.SaleID, plan.TermDays, plan.DownPayment, plan.Balance,
		plan.DueDate, plan.Status, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPlanAlreadyExists
		}
		return fmt.Errorf("insert credit plan: %w", err)
	}
	return nil
}

func (r *CreditPlanRepo) scanOne(row pgx.Row) (*entity.CreditPlan, error) {
	var p entity.CreditPlan
	err := row.Scan(
		&p.ID, &p.SaleID, &p.TermDays, &p.DownPayment, &p.Balance,
		&p.DueDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit plan: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un plan por ID.
func (r *CreditPlanRepo) GetByID(id string) (*entity.CreditPlan, error) {
	query := `SELECT ` + planColumns + ` FROM credit_plans WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySaleID obtiene el plan de una venta (a lo sumo uno).
func (r *CreditPlanRepo) GetBySaleID(saleID string) (*entity.CreditPlan, error) {
	query := `SELECT ` + planColumns + ` FROM credit_plans WHERE sale_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, saleID))
}

// GetByIDForUpdate obtiene el plan bloqueando su fila hasta el fin de la
// transacción. Dos abonos concurrentes se serializan aquí.
func (r *CreditPlanRepo) GetByIDForUpdate(id string) (*entity.CreditPlan, error) {
	query := `SELECT ` + planColumns + ` FROM credit_plans WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateBalance escribe saldo, estado y updated_at del plan.
func (r *CreditPlanRepo) UpdateBalance(plan *entity.CreditPlan) error {
	query := `
		UPDATE credit_plans
		SET balance = $2, status = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.Balance, plan.Status, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update credit plan balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update credit plan balance: plan %s no existe", plan.ID)
	}
	return nil
}
