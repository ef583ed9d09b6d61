package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	"github.com/tu-usuario/ventas-pos/pkg/normalize"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. name_normalized guarda el nombre plegado
// (sin tildes, minúsculas) para búsqueda.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, name_normalized, tax_id, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, normalize.Fold(customer.Name),
		nullIfEmpty(customer.TaxID), nullIfEmpty(customer.Phone), nullIfEmpty(customer.Address),
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

const customerColumns = `id, name, tax_id, phone, address, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var taxID, phone, address *string
	err := row.Scan(&c.ID, &c.Name, &taxID, &phone, &address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.TaxID = derefStr(taxID)
	c.Phone = derefStr(phone)
	c.Address = derefStr(address)
	return &c, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Search busca por nombre normalizado (substring) o identificación fiscal
// exacta. El caller entrega la consulta ya plegada.
func (r *CustomerRepo) Search(query string, limit int) ([]*entity.Customer, error) {
	sql := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE name_normalized LIKE '%' || $1 || '%' OR tax_id = $2
		ORDER BY name
		LIMIT $3`
	return r.list(sql, query, query, limit)
}

// List devuelve clientes paginados por nombre.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	sql := `SELECT ` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	return r.list(sql, limit, offset)
}

func (r *CustomerRepo) list(sql string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
