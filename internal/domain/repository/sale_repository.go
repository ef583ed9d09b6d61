package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
}
