package credit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	"github.com/tu-usuario/ventas-pos/pkg/logger"
)

// CreditUseCase administra planes de crédito y su libro de abonos.
type CreditUseCase struct {
	planTx      PlanTxRunner
	paymentTx   PaymentTxRunner
	saleRepo    repository.SaleRepository
	planRepo    repository.CreditPlanRepository
	paymentRepo repository.PaymentRepository
	mirror      *LegacyMirror
	log         *logger.Logger
}

// NewCreditUseCase construye el caso de uso.
func NewCreditUseCase(
	planTx PlanTxRunner,
	paymentTx PaymentTxRunner,
	saleRepo repository.SaleRepository,
	planRepo repository.CreditPlanRepository,
	paymentRepo repository.PaymentRepository,
	mirror *LegacyMirror,
	log *logger.Logger,
) *CreditUseCase {
	return &CreditUseCase{
		planTx:      planTx,
		paymentTx:   paymentTx,
		saleRepo:    saleRepo,
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		mirror:      mirror,
		log:         log,
	}
}

// CreatePlanResult plan creado más el desenlace del espejo legacy.
type CreatePlanResult struct {
	Plan   dto.CreditPlanResponse   `json:"plan"`
	Mirror dto.MirrorResultResponse `json:"mirror"`
}

// CreatePlan crea el plan de crédito de una venta ya persistida. Una venta
// tiene a lo sumo un plan activo: un segundo intento falla con
// ErrPlanAlreadyExists. La verificación y el insert corren en la misma
// transacción, con la constraint única de sale_id como respaldo.
func (uc *CreditUseCase) CreatePlan(ctx context.Context, in dto.CreatePlanRequest) (*CreatePlanResult, error) {
	if in.SaleID == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	plan, err := NewPlanForSale(sale, in.TermDays, in.DownPayment, time.Now())
	if err != nil {
		return nil, err
	}

	err = uc.planTx.RunPlan(ctx, func(planRepo repository.CreditPlanRepository) error {
		existing, err := planRepo.GetBySaleID(sale.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrPlanAlreadyExists
		}
		return planRepo.Create(plan)
	})
	if err != nil {
		return nil, err
	}

	mirror := uc.mirrorAfterCommit(ctx, plan)
	return &CreatePlanResult{
		Plan:   toPlanResponse(plan),
		Mirror: mirror,
	}, nil
}

// mirrorAfterCommit corre el espejo legacy después del commit del plan. Una
// falla aquí se registra y se reporta como Failed en la respuesta, nunca
// como omisión: el caller debe poder notar la falla sin parsear la razón.
// En ningún caso se revierte el plan ya escrito.
func (uc *CreditUseCase) mirrorAfterCommit(ctx context.Context, plan *entity.CreditPlan) dto.MirrorResultResponse {
	res, err := uc.mirror.MirrorCreate(ctx, plan.SaleID, plan.TermDays, plan.Balance)
	if err != nil {
		uc.log.Error().Err(err).Str("sale_id", plan.SaleID).Msg("espejo legacy falló; el plan primario queda intacto")
		return dto.MirrorResultResponse{Failed: true, Error: err.Error()}
	}
	if res.Skipped {
		uc.log.Info().Str("sale_id", plan.SaleID).Str("reason", res.Reason).Msg("espejo legacy omitido")
		return dto.MirrorResultResponse{Skipped: true, Reason: res.Reason}
	}
	return dto.MirrorResultResponse{}
}

// RecordPayment registra un abono contra el plan. Se ejecuta como una sola
// transacción con la fila del plan bloqueada: leer saldo, validar, insertar
// el abono y escribir el nuevo saldo. Un abono rechazado no deja ningún
// efecto parcial: o todo o nada.
func (uc *CreditUseCase) RecordPayment(ctx context.Context, planID string, amount decimal.Decimal, date time.Time, notes string) (*dto.PaymentResponse, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidPayment
	}

	var record *entity.PaymentRecord
	err := uc.paymentTx.RunPayment(ctx, func(
		planRepo repository.CreditPlanRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		plan, err := planRepo.GetByIDForUpdate(planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.ErrNotFound
		}
		if plan.Settled() {
			return domain.ErrPlanSettled
		}
		// Sin aplicación parcial: si el abono excede el saldo se rechaza
		// completo y el caller reenvía un monto corregido.
		if amount.GreaterThan(plan.Balance) {
			return domain.ErrInvalidPayment
		}

		now := time.Now()
		record = &entity.PaymentRecord{
			ID:        uuid.New().String(),
			PlanID:    plan.ID,
			Amount:    amount,
			Date:      date,
			Notes:     notes,
			CreatedAt: now,
		}
		if err := paymentRepo.Create(record); err != nil {
			return err
		}

		plan.Balance = plan.Balance.Sub(amount)
		if plan.Balance.IsZero() {
			plan.Status = entity.PlanStatusSettled
		} else {
			plan.Status = entity.PlanStatusPartiallyPaid
		}
		plan.UpdatedAt = now
		return planRepo.UpdateBalance(plan)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(record), nil
}

// ListPayments devuelve el historial de abonos, el más reciente primero.
// No muta estado.
func (uc *CreditUseCase) ListPayments(ctx context.Context, planID string) ([]dto.PaymentResponse, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.paymentRepo.ListByPlanID(planID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toPaymentResponse(r))
	}
	return out, nil
}

// GetPlan devuelve el plan con su historial de abonos.
func (uc *CreditUseCase) GetPlan(ctx context.Context, planID string) (*dto.PlanDetailResponse, error) {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.ListPayments(ctx, planID)
	if err != nil {
		return nil, err
	}
	return &dto.PlanDetailResponse{
		Plan:     toPlanResponse(plan),
		Payments: payments,
	}, nil
}

// ListLegacyBySale devuelve los registros del esquema antiguo para una venta
// (vacío si el esquema no existe en esta instalación).
func (uc *CreditUseCase) ListLegacyBySale(ctx context.Context, saleID string) ([]dto.LegacyCreditResponse, error) {
	records, err := uc.mirror.ListBySale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LegacyCreditResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.LegacyCreditResponse{
			SaleID:   r.SaleID,
			TermDays: r.TermDays,
			Balance:  r.Balance,
			Compat:   r.Compat,
		})
	}
	return out, nil
}

func toPlanResponse(p *entity.CreditPlan) dto.CreditPlanResponse {
	return dto.CreditPlanResponse{
		ID:          p.ID,
		SaleID:      p.SaleID,
		TermDays:    p.TermDays,
		DownPayment: p.DownPayment,
		Balance:     p.Balance,
		DueDate:     p.DueDate.Format("2006-01-02"),
		Status:      p.Status,
	}
}

func toPaymentResponse(r *entity.PaymentRecord) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:     r.ID,
		PlanID: r.PlanID,
		Amount: r.Amount,
		Date:   r.Date.Format("2006-01-02"),
		Notes:  r.Notes,
	}
}
