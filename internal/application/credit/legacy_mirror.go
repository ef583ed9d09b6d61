package credit

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// ReasonLegacyAbsent es la razón reportada cuando el espejo se omite porque
// la instalación no tiene el esquema antiguo.
const ReasonLegacyAbsent = "legacy schema absent"

// MirrorResult es el resultado del espejo legacy. Skipped=true es un
// desenlace esperado, distinguible tanto del éxito como de un error: el
// caller puede registrarlo sin alarmar al usuario.
type MirrorResult struct {
	Skipped bool
	Reason  string
}

// LegacyMirror replica, como mejor esfuerzo, un registro reducido del plan de
// crédito en el esquema antiguo. Sondea el catálogo en cada operación: la
// presencia de la tabla se decide en runtime, por instalación.
type LegacyMirror struct {
	repo repository.LegacyCreditRepository
}

// NewLegacyMirror construye el adaptador.
func NewLegacyMirror(repo repository.LegacyCreditRepository) *LegacyMirror {
	return &LegacyMirror{repo: repo}
}

// MirrorCreate inserta el registro reducido si el esquema antiguo existe.
// Ausente el esquema, devuelve Skipped sin error. Una falla del insert se
// devuelve como error envuelto, pero el caller nunca la usa para revertir la
// escritura primaria del plan: el espejo es consultivo, no autoritativo.
func (m *LegacyMirror) MirrorCreate(ctx context.Context, saleID string, termDays int, balance decimal.Decimal) (MirrorResult, error) {
	schema, err := m.repo.Probe()
	if err != nil {
		return MirrorResult{}, fmt.Errorf("probe legacy schema: %w", err)
	}
	if schema == repository.LegacySchemaAbsent {
		return MirrorResult{Skipped: true, Reason: ReasonLegacyAbsent}, nil
	}
	rec := &entity.LegacyCredit{
		SaleID:   saleID,
		TermDays: termDays,
		Balance:  balance,
		Compat:   true,
	}
	if err := m.repo.Create(rec); err != nil {
		return MirrorResult{}, fmt.Errorf("mirror legacy credit (sale %s): %w", saleID, err)
	}
	return MirrorResult{}, nil
}

// ListBySale devuelve los registros legacy de una venta. Con el esquema
// ausente devuelve una lista vacía, no un error.
func (m *LegacyMirror) ListBySale(ctx context.Context, saleID string) ([]*entity.LegacyCredit, error) {
	schema, err := m.repo.Probe()
	if err != nil {
		return nil, fmt.Errorf("probe legacy schema: %w", err)
	}
	if schema == repository.LegacySchemaAbsent {
		return []*entity.LegacyCredit{}, nil
	}
	return m.repo.ListBySaleID(saleID)
}
