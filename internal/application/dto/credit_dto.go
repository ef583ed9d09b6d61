package dto

import "github.com/shopspring/decimal"

// CreatePlanRequest body para POST /api/credit-plans.
type CreatePlanRequest struct {
	SaleID      string          `json:"sale_id"`
	TermDays    int             `json:"term_days"`
	DownPayment decimal.Decimal `json:"down_payment"`
}

// CreditPlanResponse plan de crédito en respuestas.
type CreditPlanResponse struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id"`
	TermDays    int             `json:"term_days"`
	DownPayment decimal.Decimal `json:"down_payment"`
	Balance     decimal.Decimal `json:"balance"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status"` // open | partially_paid | settled
}

// RecordPaymentRequest body para POST /api/credit-plans/:id/payments.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date,omitempty"` // 2006-01-02; vacío = hoy
	Notes  string          `json:"notes,omitempty"`
}

// PaymentResponse abono en respuestas.
type PaymentResponse struct {
	ID     string          `json:"id"`
	PlanID string          `json:"plan_id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// PlanDetailResponse plan con su historial de abonos.
type PlanDetailResponse struct {
	Plan     CreditPlanResponse `json:"plan"`
	Payments []PaymentResponse  `json:"payments"`
}

// LegacyCreditResponse registro del esquema de crédito antiguo.
type LegacyCreditResponse struct {
	SaleID   string          `json:"sale_id"`
	TermDays int             `json:"term_days"`
	Balance  decimal.Decimal `json:"balance"`
	Compat   bool            `json:"compat"`
}

// MirrorResultResponse resultado del espejo legacy al crear un plan. Tres
// desenlaces distinguibles: éxito (ambos flags en false), omitido (Skipped:
// la instalación no tiene el esquema antiguo, no es un error) y fallido
// (Failed: el insert falló; el plan primario queda intacto de todos modos).
type MirrorResultResponse struct {
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
	Failed  bool   `json:"failed"`
	Error   string `json:"error,omitempty"`
}
