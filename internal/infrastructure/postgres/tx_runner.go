package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/ventas-pos/internal/application/credit"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// Ensure TxRunner implements sales.SaleTxRunner, credit.PlanTxRunner and
// credit.PaymentTxRunner.
var (
	_ sales.SaleTxRunner     = (*TxRunner)(nil)
	_ credit.PlanTxRunner    = (*TxRunner)(nil)
	_ credit.PaymentTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cada
// mutación multi-fila del libro de crédito pasa por aquí: o confirman todas
// las filas o ninguna.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos de emisión de venta:
// consecutivo, cabecera, líneas y plan de crédito.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	planRepo repository.CreditPlanRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewSaleRepository(tx), NewCreditPlanRepository(tx), NewSequenceRepository(tx))
	})
}

// RunPlan inicia una transacción para crear un plan de crédito: la
// verificación de duplicado y el insert corren como una unidad.
func (r *TxRunner) RunPlan(ctx context.Context, fn func(
	planRepo repository.CreditPlanRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewCreditPlanRepository(tx))
	})
}

// RunPayment inicia una transacción para registrar un abono: lectura del
// plan con bloqueo de fila, insert del abono y actualización del saldo.
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	planRepo repository.CreditPlanRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewCreditPlanRepository(tx), NewPaymentRepository(tx))
	})
}
