// Package sale contiene el agregado de venta en borrador: líneas, totales
// derivados y validación previa a la emisión del comprobante.
//
// El diseño es de dos fases: las mutaciones (agregar, quitar, cambiar
// cantidad) nunca fallan y recalculan los totales como efecto; Validate es la
// única compuerta antes de persistir y reporta todos los problemas juntos
// para que el caller pueda mostrarlos de una vez.
package sale

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
)

// IVARate es la tarifa fija de IVA aplicada al subtotal (12%).
var IVARate = decimal.New(12, -2)

// CustomerSnapshot son los datos del cliente copiados al comprobante.
type CustomerSnapshot struct {
	Name    string
	TaxID   string
	Phone   string
	Address string
}

// LineItem es una línea del borrador. Subtotal siempre es Quantity*UnitPrice;
// lo recalcula el draft en cada mutación.
type LineItem struct {
	ID          string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Draft es la venta en construcción. Las líneas le pertenecen en exclusiva:
// un mismo producto nunca aparece en dos líneas (re-agregar suma cantidad).
type Draft struct {
	DocumentType string // entity.DocTypeNotaVenta | entity.DocTypeFactura
	Customer     CustomerSnapshot
	Items        []LineItem
	Discount     decimal.Decimal
	Notes        string

	// Totales derivados; se mantienen consistentes tras cada mutación.
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal

	newID func() string
}

// NewDraft crea un borrador vacío del tipo de documento indicado.
func NewDraft(documentType string, customer CustomerSnapshot) *Draft {
	d := &Draft{
		DocumentType: documentType,
		Customer:     customer,
		newID:        func() string { return uuid.New().String() },
	}
	d.RecalculateTotals()
	return d
}

// AddItem agrega una línea. Si ya existe una línea para el mismo producto,
// incrementa su cantidad en lugar de duplicarla. Recalcula totales.
func (d *Draft) AddItem(productID, description string, quantity, unitPrice decimal.Decimal) {
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			d.Items[i].Quantity = d.Items[i].Quantity.Add(quantity)
			d.RecalculateTotals()
			return
		}
	}
	d.Items = append(d.Items, LineItem{
		ID:          d.newID(),
		ProductID:   productID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	d.RecalculateTotals()
}

// RemoveItem quita la línea indicada. Si no existe no hace nada (no es un
// error). Recalcula totales.
func (d *Draft) RemoveItem(itemID string) {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			break
		}
	}
	d.RecalculateTotals()
}

// UpdateQuantity fija la cantidad de una línea y recalcula totales. No
// rechaza cantidades no positivas: la validación ocurre en Validate, antes
// de emitir.
func (d *Draft) UpdateQuantity(itemID string, quantity decimal.Decimal) {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			d.Items[i].Quantity = quantity
			break
		}
	}
	d.RecalculateTotals()
}

// SetDiscount fija el descuento global y recalcula totales.
func (d *Draft) SetDiscount(discount decimal.Decimal) {
	d.Discount = discount
	d.RecalculateTotals()
}

// RecalculateTotals recalcula subtotal, IVA y total como función pura de las
// líneas actuales y el descuento:
//
//	subtotal = Σ(cantidad × precio unitario)
//	iva      = subtotal × 12%
//	total    = subtotal + iva − descuento, nunca negativo
func (d *Draft) RecalculateTotals() {
	subtotal := decimal.Zero
	for i := range d.Items {
		d.Items[i].Subtotal = d.Items[i].Quantity.Mul(d.Items[i].UnitPrice)
		subtotal = subtotal.Add(d.Items[i].Subtotal)
	}
	d.Subtotal = subtotal
	d.Tax = subtotal.Mul(IVARate)
	total := subtotal.Add(d.Tax).Sub(d.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	d.Total = total
}

// ValidationResult es el resultado estructurado de Validate. Errors acumula
// todos los mensajes encontrados, no solo el primero.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidationError envuelve un ValidationResult inválido como error para las
// capas que propagan por error.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "venta inválida"
	}
	return "venta inválida: " + e.Messages[0]
}

// Validate revisa el borrador completo antes de emitir:
//   - debe tener al menos una línea
//   - una factura requiere identificación fiscal del cliente
//   - ninguna línea puede tener cantidad ≤ 0
func (d *Draft) Validate() ValidationResult {
	var errs []string
	if len(d.Items) == 0 {
		errs = append(errs, "at least one line item required")
	}
	if d.DocumentType == entity.DocTypeFactura && d.Customer.TaxID == "" {
		errs = append(errs, "tax id required for invoice documents")
	}
	for i := range d.Items {
		if !d.Items[i].Quantity.GreaterThan(decimal.Zero) {
			errs = append(errs, "quantity must be positive: "+d.Items[i].Description)
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
