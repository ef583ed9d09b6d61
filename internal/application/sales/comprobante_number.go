package sales

import (
	"fmt"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// Prefijos de serie por tipo de documento. Cada serie numera por separado.
var seriesPrefix = map[string]string{
	entity.DocTypeNotaVenta: "NV",
	entity.DocTypeFactura:   "FAC",
}

// formatComprobante arma el número de comprobante con el mismo formato de
// siempre (prefijo-sufijo de ancho fijo), pero el sufijo sale de un contador
// atómico por serie en la base, no del reloj: dos emisiones en el mismo
// instante no pueden chocar.
func formatComprobante(documentType string, n int64) string {
	return fmt.Sprintf("%s-%06d", seriesPrefix[documentType], n)
}
