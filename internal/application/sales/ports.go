package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// SaleTxRunner ejecuta la emisión de una venta dentro de una transacción:
// consecutivo de la serie, cabecera, líneas y (si aplica) plan de crédito
// confirman todos juntos o ninguno.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		planRepo repository.CreditPlanRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// ComprobantePDFGenerator genera la representación impresa del comprobante.
type ComprobantePDFGenerator interface {
	GenerateComprobantePDF(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem, plan *entity.CreditPlan) ([]byte, error)
}

// ComprobanteXMLExporter genera la representación XML del comprobante para
// archivo fiscal.
type ComprobanteXMLExporter interface {
	Export(sale *entity.Sale, items []*entity.SaleItem) ([]byte, error)
}
