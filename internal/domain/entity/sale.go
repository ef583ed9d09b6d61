package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comprobante. Cada tipo tiene su propia serie de numeración.
const (
	DocTypeNotaVenta = "nota_venta"
	DocTypeFactura   = "factura"
)

// Formas de pago de una venta.
const (
	TermsContado = "contado"
	TermsCredito = "credito"
)

// Estados de la venta.
const (
	SaleStatusEmitida = "emitida"
	SaleStatusAnulada = "anulada"
)

// Sale representa la cabecera de una venta ya confirmada.
// Los datos del cliente son una copia tomada al momento de emitir el
// comprobante, no una referencia viva al directorio de clientes.
type Sale struct {
	ID              string
	Comprobante     string // número de comprobante, único dentro de su serie
	DocumentType    string // nota_venta | factura
	Date            time.Time
	CustomerName    string
	CustomerTaxID   string // RUC o cédula
	CustomerPhone   string
	CustomerAddress string
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	Terms           string // contado | credito
	Status          string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
