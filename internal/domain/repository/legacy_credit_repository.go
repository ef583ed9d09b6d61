package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// LegacySchema es el resultado de sondear el catálogo por la tabla del
// esquema antiguo. Los callers ramifican sobre esta etiqueta, nunca sobre un
// error de tabla inexistente.
type LegacySchema int

const (
	LegacySchemaAbsent LegacySchema = iota
	LegacySchemaPresent
)

// LegacyCreditRepository define el puerto hacia el esquema de crédito
// antiguo, que puede no existir en una instalación dada.
type LegacyCreditRepository interface {
	// Probe consulta el catálogo de la base por la existencia de la tabla
	// legacy. No es un error que esté ausente.
	Probe() (LegacySchema, error)
	Create(record *entity.LegacyCredit) error
	ListBySaleID(saleID string) ([]*entity.LegacyCredit, error)
}
