// Package pdf implementa la representación impresa del comprobante de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RUC  │  N° Comprobante + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + RUC/CI + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / IVA 12% / Descuento / TOTAL            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CRÉDITO (si aplica): cuota inicial, saldo, vencimiento     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/ventas-pos/internal/application/sales"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ sales.ComprobantePDFGenerator = (*ComprobantePDFGenerator)(nil)

// ComprobantePDFGenerator implementa sales.ComprobantePDFGenerator usando
// Maroto v2.
type ComprobantePDFGenerator struct {
	storeName string
	storeRUC  string
}

// NewComprobantePDFGenerator construye el generador con los datos del
// emisor.
func NewComprobantePDFGenerator(storeName, storeRUC string) *ComprobantePDFGenerator {
	return &ComprobantePDFGenerator{storeName: storeName, storeRUC: storeRUC}
}

// GenerateComprobantePDF genera el PDF y devuelve sus bytes. Si plan no es
// nil se agrega el resumen de crédito.
func (g *ComprobantePDFGenerator) GenerateComprobantePDF(
	_ context.Context,
	sale *entity.Sale,
	items []*entity.SaleItem,
	plan *entity.CreditPlan,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+sale.Comprobante, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	if plan != nil {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range creditRows(plan) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// documentTitle etiqueta impresa según el tipo de comprobante.
func documentTitle(documentType string) string {
	if documentType == entity.DocTypeFactura {
		return "FACTURA DE VENTA"
	}
	return "NOTA DE VENTA"
}

// headerRow: razón social + RUC (izq) y N° comprobante + fecha (der).
func (g *ComprobantePDFGenerator) headerRow(sale *entity.Sale) core.Row {
	fecha := sale.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC: "+nonEmpty(g.storeRUC, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(documentTitle(sale.DocumentType), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.Comprobante, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente copiados al comprobante.
func customerRow(sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RUC/CI: %s   |   Tel: %s   |   Dirección: %s",
				nonEmpty(sale.CustomerTaxID, "—"),
				nonEmpty(sale.CustomerPhone, "—"),
				nonEmpty(sale.CustomerAddress, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(items []*entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("IVA 12%:"),
			label("Descuento:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+sale.Subtotal.StringFixed(2)),
			value("$"+sale.Tax.StringFixed(2)),
			value("$"+sale.Discount.StringFixed(2)),
			grandValue("$"+sale.Total.StringFixed(2)),
		),
		col.New(3),
	)
}

// creditRows: resumen del plan de crédito para ventas a plazo.
func creditRows(plan *entity.CreditPlan) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("VENTA A CRÉDITO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Cuota inicial: $%s   |   Saldo pendiente: $%s   |   Plazo: %d días   |   Vence: %s",
				plan.DownPayment.StringFixed(2),
				plan.Balance.StringFixed(2),
				plan.TermDays,
				plan.DueDate.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Los abonos a este crédito se registran en caja y actualizan el saldo pendiente.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
