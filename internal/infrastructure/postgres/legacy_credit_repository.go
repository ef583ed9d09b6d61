package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.LegacyCreditRepository = (*LegacyCreditRepo)(nil)

// legacyTable es la tabla del esquema de crédito antiguo. Solo existe en
// instalaciones migradas desde la versión anterior del sistema.
const legacyTable = "legacy_credit"

// LegacyCreditRepo implementación de LegacyCreditRepository. Sondea el
// catálogo antes de cualquier escritura: la ausencia de la tabla es un
// desenlace esperado, no un error.
type LegacyCreditRepo struct {
	q Querier
}

// NewLegacyCreditRepository construye el adaptador. Pasar pool o tx
// (Querier).
func NewLegacyCreditRepository(q Querier) *LegacyCreditRepo {
	return &LegacyCreditRepo{q: q}
}

// Probe consulta el catálogo por la existencia de la tabla legacy.
func (r *LegacyCreditRepo) Probe() (repository.LegacySchema, error) {
	var reg *string
	err := r.q.QueryRow(context.Background(),
		`SELECT to_regclass('public.'||$1)::text`, legacyTable,
	).Scan(&reg)
	if err != nil {
		return repository.LegacySchemaAbsent, fmt.Errorf("probe catalog: %w", err)
	}
	if reg == nil {
		return repository.LegacySchemaAbsent, nil
	}
	return repository.LegacySchemaPresent, nil
}

// Create inserta el registro reducido en el esquema antiguo. El caller debe
// haber verificado Probe antes.
func (r *LegacyCreditRepo) Create(record *entity.LegacyCredit) error {
	query := `
		INSERT INTO legacy_credit (sale_id, term, balance, compat)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		record.SaleID, record.TermDays, record.Balance, record.Compat,
	)
	if err != nil {
		return fmt.Errorf("insert legacy credit: %w", err)
	}
	return nil
}

// ListBySaleID obtiene los registros legacy de una venta.
func (r *LegacyCreditRepo) ListBySaleID(saleID string) ([]*entity.LegacyCredit, error) {
	query := `
		SELECT sale_id, term, balance, compat
		FROM legacy_credit WHERE sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list legacy credits: %w", err)
	}
	defer rows.Close()
	var list []*entity.LegacyCredit
	for rows.Next() {
		var lc entity.LegacyCredit
		if err := rows.Scan(&lc.SaleID, &lc.TermDays, &lc.Balance, &lc.Compat); err != nil {
			return nil, fmt.Errorf("scan legacy credit: %w", err)
		}
		list = append(list, &lc)
	}
	return list, rows.Err()
}
