package dto

import "github.com/shopspring/decimal"

// CustomerSnapshotDTO datos del cliente copiados al comprobante.
type CustomerSnapshotDTO struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SaleItemRequest línea de venta (producto, cantidad, precio unitario).
type SaleItemRequest struct {
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest body para POST /api/sales. Si Terms es "credito",
// TermDays y DownPayment crean el plan de crédito en la misma transacción.
// Con CustomerID la copia del cliente se toma del directorio y los campos de
// Customer no vacíos la sobreescriben; sin CustomerID se usa solo Customer.
type CreateSaleRequest struct {
	DocumentType string              `json:"document_type"` // nota_venta | factura
	CustomerID   string              `json:"customer_id,omitempty"`
	Customer     CustomerSnapshotDTO `json:"customer"`
	Items        []SaleItemRequest   `json:"items"`
	Discount     decimal.Decimal     `json:"discount"`
	Terms        string              `json:"terms"` // contado | credito
	TermDays     int                 `json:"term_days,omitempty"`
	DownPayment  decimal.Decimal     `json:"down_payment,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// SaleItemResponse línea de detalle en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con detalle para POST /api/sales y GET /api/sales/:id.
type SaleResponse struct {
	ID           string              `json:"id"`
	Comprobante  string              `json:"comprobante"`
	DocumentType string              `json:"document_type"`
	Date         string              `json:"date"`
	Customer     CustomerSnapshotDTO `json:"customer"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Tax          decimal.Decimal     `json:"tax"`
	Discount     decimal.Decimal     `json:"discount"`
	Total        decimal.Decimal     `json:"total"`
	Terms        string              `json:"terms"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	Items        []SaleItemResponse  `json:"items"`
	CreditPlan   *CreditPlanResponse `json:"credit_plan,omitempty"`
}
