package entity

import "time"

// Customer representa un cliente del directorio. Al emitir una venta se copia
// su información al comprobante; editar el cliente no altera ventas pasadas.
type Customer struct {
	ID        string
	Name      string
	TaxID     string // RUC o cédula
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
