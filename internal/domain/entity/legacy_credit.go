package entity

import "github.com/shopspring/decimal"

// LegacyCredit es la representación reducida del crédito en el esquema
// antiguo. Solo existe en instalaciones donde la tabla legacy está presente;
// se escribe como espejo al crear el plan y no se mantiene después.
type LegacyCredit struct {
	SaleID   string
	TermDays int
	Balance  decimal.Decimal
	Compat   bool
}
