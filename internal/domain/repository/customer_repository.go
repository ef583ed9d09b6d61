package repository

import "github.com/tu-usuario/ventas-pos/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para el directorio de
// clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// Search busca por nombre normalizado (sin tildes, minúsculas) o por
	// identificación fiscal exacta.
	Search(query string, limit int) ([]*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
