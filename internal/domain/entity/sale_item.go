package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de detalle de una venta.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
