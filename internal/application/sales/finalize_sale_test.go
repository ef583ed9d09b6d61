package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pos/internal/application/credit"
	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	domainsale "github.com/tu-usuario/ventas-pos/internal/domain/sale"
	"github.com/tu-usuario/ventas-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	sales     map[string]*entity.Sale
	items     []*entity.SaleItem
	plans     map[string]*entity.CreditPlan
	sequences map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		sales:     map[string]*entity.Sale{},
		plans:     map[string]*entity.CreditPlan{},
		sequences: map[string]int64{},
	}
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error { r.s.sales[sale.ID] = sale; return nil }
func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.s.items = append(r.s.items, item)
	return nil
}
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.s.sales[id], nil }
func (r *memSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.s.items {
		if it.SaleID == saleID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memPlanRepo struct {
	s          *memStore
	failCreate error
}

func (r *memPlanRepo) Create(p *entity.CreditPlan) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.s.plans[p.ID] = p
	return nil
}
func (r *memPlanRepo) GetByID(id string) (*entity.CreditPlan, error) { return r.s.plans[id], nil }
func (r *memPlanRepo) GetBySaleID(saleID string) (*entity.CreditPlan, error) {
	for _, p := range r.s.plans {
		if p.SaleID == saleID {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memPlanRepo) GetByIDForUpdate(id string) (*entity.CreditPlan, error) {
	return r.GetByID(id)
}
func (r *memPlanRepo) UpdateBalance(p *entity.CreditPlan) error { return nil }

type memSeqRepo struct{ s *memStore }

func (r *memSeqRepo) Next(series string) (int64, error) {
	r.s.sequences[series]++
	return r.s.sequences[series], nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *memCustomerRepo) Create(c *entity.Customer) error { r.customers[c.ID] = c; return nil }
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *memCustomerRepo) Search(string, int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) List(int, int) ([]*entity.Customer, error)     { return nil, nil }

type memLegacyRepo struct{}

func (r *memLegacyRepo) Probe() (repository.LegacySchema, error) {
	return repository.LegacySchemaAbsent, nil
}
func (r *memLegacyRepo) Create(*entity.LegacyCredit) error { return nil }
func (r *memLegacyRepo) ListBySaleID(string) ([]*entity.LegacyCredit, error) {
	return nil, nil
}

// memTxRunner simula el descarte transaccional: los repos escriben sobre una
// copia del store y solo un fn exitoso publica los cambios.
type memTxRunner struct {
	s        *memStore
	planRepo *memPlanRepo
}

func (t *memTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	planRepo repository.CreditPlanRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	snapshot := &memStore{
		sales:     map[string]*entity.Sale{},
		plans:     map[string]*entity.CreditPlan{},
		sequences: map[string]int64{},
	}
	for k, v := range t.s.sales {
		snapshot.sales[k] = v
	}
	snapshot.items = append(snapshot.items, t.s.items...)
	for k, v := range t.s.plans {
		snapshot.plans[k] = v
	}
	for k, v := range t.s.sequences {
		snapshot.sequences[k] = v
	}

	planRepo := &memPlanRepo{s: snapshot, failCreate: t.planRepo.failCreate}
	if err := fn(&memSaleRepo{s: snapshot}, planRepo, &memSeqRepo{s: snapshot}); err != nil {
		return err
	}
	*t.s = *snapshot
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────────────────────────────────────

type saleFixture struct {
	uc        *sales.FinalizeSaleUseCase
	store     *memStore
	planRepo  *memPlanRepo
	customers *memCustomerRepo
}

func newSaleFixture() *saleFixture {
	store := newMemStore()
	planRepo := &memPlanRepo{s: store}
	customers := &memCustomerRepo{customers: map[string]*entity.Customer{}}
	tx := &memTxRunner{s: store, planRepo: planRepo}
	mirror := credit.NewLegacyMirror(&memLegacyRepo{})
	uc := sales.NewFinalizeSaleUseCase(tx, &memSaleRepo{s: store}, planRepo, customers, mirror, logger.Nop())
	return &saleFixture{uc: uc, store: store, planRepo: planRepo, customers: customers}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func baseSaleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		DocumentType: entity.DocTypeNotaVenta,
		Customer:     dto.CustomerSnapshotDTO{Name: "Consumidor Final"},
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Description: "Producto A", Quantity: dec("2"), UnitPrice: dec("10.00")},
			{ProductID: "p2", Description: "Producto B", Quantity: dec("1"), UnitPrice: dec("5.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Emisión
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizeSale_EmiteConTotales(t *testing.T) {
	f := newSaleFixture()

	res, err := f.uc.FinalizeSale(context.Background(), baseSaleRequest())
	require.NoError(t, err)

	assert.Equal(t, "NV-000001", res.Comprobante)
	assert.True(t, dec("25.00").Equal(res.Subtotal))
	assert.True(t, dec("3.00").Equal(res.Tax))
	assert.True(t, dec("28.00").Equal(res.Total))
	assert.Equal(t, entity.SaleStatusEmitida, res.Status)
	assert.Equal(t, entity.TermsContado, res.Terms, "sin forma de pago explícita, la venta es de contado")
	assert.Nil(t, res.CreditPlan)
	assert.Len(t, res.Items, 2)
}

// Cada serie numera por separado y el consecutivo avanza de a uno.
func TestFinalizeSale_SeriesIndependientes(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	r1, err := f.uc.FinalizeSale(ctx, baseSaleRequest())
	require.NoError(t, err)
	r2, err := f.uc.FinalizeSale(ctx, baseSaleRequest())
	require.NoError(t, err)

	factura := baseSaleRequest()
	factura.DocumentType = entity.DocTypeFactura
	factura.Customer.TaxID = "1790012345001"
	r3, err := f.uc.FinalizeSale(ctx, factura)
	require.NoError(t, err)

	assert.Equal(t, "NV-000001", r1.Comprobante)
	assert.Equal(t, "NV-000002", r2.Comprobante)
	assert.Equal(t, "FAC-000001", r3.Comprobante, "la serie de facturas no comparte consecutivo con notas de venta")
}

// Un borrador inválido devuelve ValidationError con todos los mensajes y no
// escribe nada.
func TestFinalizeSale_BorradorInvalido(t *testing.T) {
	f := newSaleFixture()

	req := baseSaleRequest()
	req.DocumentType = entity.DocTypeFactura // sin RUC
	req.Items[0].Quantity = decimal.Zero

	_, err := f.uc.FinalizeSale(context.Background(), req)

	var verr *domainsale.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "tax id required for invoice documents")
	assert.Contains(t, verr.Messages, "quantity must be positive: Producto A")
	assert.Empty(t, f.store.sales, "una venta inválida no debe persistirse")
	assert.Zero(t, f.store.sequences[entity.DocTypeFactura], "una venta inválida no debe consumir consecutivo")
}

func TestFinalizeSale_TipoDeDocumentoInvalido(t *testing.T) {
	f := newSaleFixture()

	req := baseSaleRequest()
	req.DocumentType = "ticket"

	_, err := f.uc.FinalizeSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución del cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizeSale_ClienteDelDirectorio(t *testing.T) {
	f := newSaleFixture()
	f.customers.customers["c1"] = &entity.Customer{
		ID:      "c1",
		Name:    "María Pérez",
		TaxID:   "1790012345001",
		Phone:   "0991234567",
		Address: "Av. Amazonas N24-03",
	}

	req := baseSaleRequest()
	req.CustomerID = "c1"
	req.Customer = dto.CustomerSnapshotDTO{}

	res, err := f.uc.FinalizeSale(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "María Pérez", res.Customer.Name)
	assert.Equal(t, "1790012345001", res.Customer.TaxID)
	assert.Equal(t, "0991234567", res.Customer.Phone)
	assert.Equal(t, "Av. Amazonas N24-03", res.Customer.Address)
}

// Los campos en línea no vacíos sobreescriben los del directorio.
func TestFinalizeSale_ClienteEnLineaSobreescribeDirectorio(t *testing.T) {
	f := newSaleFixture()
	f.customers.customers["c1"] = &entity.Customer{
		ID:    "c1",
		Name:  "María Pérez",
		TaxID: "1790012345001",
		Phone: "0991234567",
	}

	req := baseSaleRequest()
	req.CustomerID = "c1"
	req.Customer = dto.CustomerSnapshotDTO{Name: "María P. de Torres", Address: "Calle Larga 12"}

	res, err := f.uc.FinalizeSale(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "María P. de Torres", res.Customer.Name, "el nombre en línea gana sobre el directorio")
	assert.Equal(t, "1790012345001", res.Customer.TaxID, "los campos vacíos se completan desde el directorio")
	assert.Equal(t, "0991234567", res.Customer.Phone)
	assert.Equal(t, "Calle Larga 12", res.Customer.Address)
}

func TestFinalizeSale_ClienteInexistente(t *testing.T) {
	f := newSaleFixture()

	req := baseSaleRequest()
	req.CustomerID = "no-existe"

	_, err := f.uc.FinalizeSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.store.sales, "una venta con cliente inexistente no debe persistirse")
	assert.Zero(t, f.store.sequences[entity.DocTypeNotaVenta])
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta a crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalizeSale_CreditoCreaPlanEnLaMismaOperacion(t *testing.T) {
	f := newSaleFixture()

	req := baseSaleRequest()
	req.Terms = entity.TermsCredito
	req.TermDays = 30
	req.DownPayment = dec("8.00")

	res, err := f.uc.FinalizeSale(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, res.CreditPlan)
	assert.Equal(t, res.ID, res.CreditPlan.SaleID)
	assert.True(t, dec("20.00").Equal(res.CreditPlan.Balance), "saldo debe ser 28.00−8.00")
	assert.Equal(t, entity.PlanStatusOpen, res.CreditPlan.Status)
	assert.Len(t, f.store.plans, 1)
}

func TestFinalizeSale_CuotaInicialInvalidaRechazaTodo(t *testing.T) {
	f := newSaleFixture()

	req := baseSaleRequest()
	req.Terms = entity.TermsCredito
	req.DownPayment = dec("999.00") // mayor al total

	_, err := f.uc.FinalizeSale(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
	assert.Empty(t, f.store.sales, "la venta no debe quedar escrita sin su plan")
	assert.Zero(t, f.store.sequences[entity.DocTypeNotaVenta])
}

// Venta y plan confirman juntos: si el insert del plan falla, la venta y el
// consecutivo se revierten con él.
func TestFinalizeSale_FallaDelPlanRevierteLaVenta(t *testing.T) {
	f := newSaleFixture()
	f.planRepo.failCreate = errors.New("constraint violada")

	req := baseSaleRequest()
	req.Terms = entity.TermsCredito
	req.DownPayment = dec("8.00")

	_, err := f.uc.FinalizeSale(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, f.store.sales)
	assert.Empty(t, f.store.plans)
	assert.Zero(t, f.store.sequences[entity.DocTypeNotaVenta])
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_CompletaConPlan(t *testing.T) {
	f := newSaleFixture()
	ctx := context.Background()

	req := baseSaleRequest()
	req.Terms = entity.TermsCredito
	req.TermDays = 15
	req.DownPayment = dec("10.00")
	created, err := f.uc.FinalizeSale(ctx, req)
	require.NoError(t, err)

	got, err := f.uc.GetSale(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Comprobante, got.Comprobante)
	assert.Len(t, got.Items, 2)
	require.NotNil(t, got.CreditPlan)
	assert.True(t, dec("18.00").Equal(got.CreditPlan.Balance))
}

func TestGetSale_Inexistente(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.GetSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
