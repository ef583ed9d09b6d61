package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-pos/internal/application/credit"
	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	domainsale "github.com/tu-usuario/ventas-pos/internal/domain/sale"
	"github.com/tu-usuario/ventas-pos/pkg/logger"
)

// FinalizeSaleUseCase valida un borrador de venta y lo emite: asigna el
// número de comprobante, persiste cabecera y líneas y, si la forma de pago
// es crédito, crea el plan en la misma transacción.
type FinalizeSaleUseCase struct {
	txRunner     SaleTxRunner
	saleRepo     repository.SaleRepository
	planRepo     repository.CreditPlanRepository
	customerRepo repository.CustomerRepository
	mirror       *credit.LegacyMirror
	log          *logger.Logger
}

// NewFinalizeSaleUseCase construye el caso de uso.
func NewFinalizeSaleUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	planRepo repository.CreditPlanRepository,
	customerRepo repository.CustomerRepository,
	mirror *credit.LegacyMirror,
	log *logger.Logger,
) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		planRepo:     planRepo,
		customerRepo: customerRepo,
		mirror:       mirror,
		log:          log,
	}
}

// resolveCustomer arma la copia del cliente para el comprobante. Con
// CustomerID se parte del directorio (ErrNotFound si no existe) y los campos
// en línea no vacíos lo sobreescriben; sin CustomerID se usa solo lo enviado
// en línea.
func (uc *FinalizeSaleUseCase) resolveCustomer(in dto.CreateSaleRequest) (domainsale.CustomerSnapshot, error) {
	snapshot := domainsale.CustomerSnapshot{
		Name:    in.Customer.Name,
		TaxID:   in.Customer.TaxID,
		Phone:   in.Customer.Phone,
		Address: in.Customer.Address,
	}
	if in.CustomerID == "" {
		return snapshot, nil
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return domainsale.CustomerSnapshot{}, err
	}
	if customer == nil {
		return domainsale.CustomerSnapshot{}, domain.ErrNotFound
	}
	if snapshot.Name == "" {
		snapshot.Name = customer.Name
	}
	if snapshot.TaxID == "" {
		snapshot.TaxID = customer.TaxID
	}
	if snapshot.Phone == "" {
		snapshot.Phone = customer.Phone
	}
	if snapshot.Address == "" {
		snapshot.Address = customer.Address
	}
	return snapshot, nil
}

// FinalizeSale emite la venta. El borrador se construye y valida primero;
// una venta inválida devuelve *sale.ValidationError con todos los mensajes.
// El número de comprobante sale del contador de la serie dentro de la misma
// transacción que inserta la venta, y es inmutable después del commit.
func (uc *FinalizeSaleUseCase) FinalizeSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.DocumentType != entity.DocTypeNotaVenta && in.DocumentType != entity.DocTypeFactura {
		return nil, domain.ErrInvalidInput
	}
	terms := in.Terms
	if terms == "" {
		terms = entity.TermsContado
	}
	if terms != entity.TermsContado && terms != entity.TermsCredito {
		return nil, domain.ErrInvalidInput
	}

	snapshot, err := uc.resolveCustomer(in)
	if err != nil {
		return nil, err
	}

	draft := domainsale.NewDraft(in.DocumentType, snapshot)
	for _, it := range in.Items {
		draft.AddItem(it.ProductID, it.Description, it.Quantity, it.UnitPrice)
	}
	draft.SetDiscount(in.Discount)
	draft.Notes = in.Notes

	if vr := draft.Validate(); !vr.Valid {
		return nil, &domainsale.ValidationError{Messages: vr.Errors}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		DocumentType:    draft.DocumentType,
		Date:            now,
		CustomerName:    draft.Customer.Name,
		CustomerTaxID:   draft.Customer.TaxID,
		CustomerPhone:   draft.Customer.Phone,
		CustomerAddress: draft.Customer.Address,
		Subtotal:        draft.Subtotal,
		Tax:             draft.Tax,
		Discount:        draft.Discount,
		Total:           draft.Total,
		Terms:           terms,
		Status:          entity.SaleStatusEmitida,
		Notes:           draft.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	items := make([]*entity.SaleItem, 0, len(draft.Items))
	for _, li := range draft.Items {
		items = append(items, &entity.SaleItem{
			ID:          li.ID,
			SaleID:      sale.ID,
			ProductID:   li.ProductID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Subtotal:    li.Subtotal,
		})
	}

	// El plan se arma antes de abrir la transacción: una cuota inicial fuera
	// de rango rechaza la operación completa sin tocar la base.
	var plan *entity.CreditPlan
	if terms == entity.TermsCredito {
		var err error
		plan, err = credit.NewPlanForSale(sale, in.TermDays, in.DownPayment, now)
		if err != nil {
			return nil, err
		}
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		planRepo repository.CreditPlanRepository,
		seqRepo repository.SequenceRepository,
	) error {
		n, err := seqRepo.Next(sale.DocumentType)
		if err != nil {
			return err
		}
		sale.Comprobante = formatComprobante(sale.DocumentType, n)
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		if plan != nil {
			return planRepo.Create(plan)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Espejo legacy fuera de la transacción primaria: su falla nunca
	// revierte la venta ni el plan ya confirmados.
	if plan != nil {
		res, err := uc.mirror.MirrorCreate(ctx, sale.ID, plan.TermDays, plan.Balance)
		switch {
		case err != nil:
			uc.log.Error().Err(err).Str("sale_id", sale.ID).Msg("espejo legacy falló al emitir la venta")
		case res.Skipped:
			uc.log.Info().Str("sale_id", sale.ID).Str("reason", res.Reason).Msg("espejo legacy omitido")
		}
	}

	return toSaleResponse(sale, items, plan), nil
}

// GetSale devuelve la venta completa: cabecera, líneas y plan de crédito si
// existe.
func (uc *FinalizeSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	plan, err := uc.planRepo.GetBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items, plan), nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem, plan *entity.CreditPlan) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           sale.ID,
		Comprobante:  sale.Comprobante,
		DocumentType: sale.DocumentType,
		Date:         sale.Date.Format("2006-01-02"),
		Customer: dto.CustomerSnapshotDTO{
			Name:    sale.CustomerName,
			TaxID:   sale.CustomerTaxID,
			Phone:   sale.CustomerPhone,
			Address: sale.CustomerAddress,
		},
		Subtotal: sale.Subtotal,
		Tax:      sale.Tax,
		Discount: sale.Discount,
		Total:    sale.Total,
		Terms:    sale.Terms,
		Status:   sale.Status,
		Notes:    sale.Notes,
		Items:    make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	if plan != nil {
		resp.CreditPlan = &dto.CreditPlanResponse{
			ID:          plan.ID,
			SaleID:      plan.SaleID,
			TermDays:    plan.TermDays,
			DownPayment: plan.DownPayment,
			Balance:     plan.Balance,
			DueDate:     plan.DueDate.Format("2006-01-02"),
			Status:      plan.Status,
		}
	}
	return resp
}
