package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

// ComprobanteUseCase entrega las representaciones del comprobante: impresa
// (PDF) y de archivo fiscal (XML).
type ComprobanteUseCase struct {
	saleRepo repository.SaleRepository
	planRepo repository.CreditPlanRepository
	pdfGen   ComprobantePDFGenerator
	xmlExp   ComprobanteXMLExporter
}

// NewComprobanteUseCase construye el caso de uso.
func NewComprobanteUseCase(
	saleRepo repository.SaleRepository,
	planRepo repository.CreditPlanRepository,
	pdfGen ComprobantePDFGenerator,
	xmlExp ComprobanteXMLExporter,
) *ComprobanteUseCase {
	return &ComprobanteUseCase{saleRepo: saleRepo, planRepo: planRepo, pdfGen: pdfGen, xmlExp: xmlExp}
}

func (uc *ComprobanteUseCase) load(id string) (*entity.Sale, []*entity.SaleItem, *entity.CreditPlan, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if sale == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	plan, err := uc.planRepo.GetBySaleID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	return sale, items, plan, nil
}

// PDF genera el comprobante impreso. Si la venta es a crédito incluye el
// resumen del plan (cuota inicial, saldo, vencimiento).
func (uc *ComprobanteUseCase) PDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, items, plan, err := uc.load(saleID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateComprobantePDF(ctx, sale, items, plan)
}

// XML genera la representación XML del comprobante.
func (uc *ComprobanteUseCase) XML(ctx context.Context, saleID string) ([]byte, error) {
	sale, items, _, err := uc.load(saleID)
	if err != nil {
		return nil, err
	}
	return uc.xmlExp.Export(sale, items)
}
