package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, comprobante_number, document_type, date,
		                   customer_name, customer_tax_id, customer_phone, customer_address,
		                   subtotal, tax, discount, total, terms, status, notes,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Comprobante, sale.DocumentType, sale.Date,
		sale.CustomerName, nullIfEmpty(sale.CustomerTaxID), nullIfEmpty(sale.CustomerPhone), nullIfEmpty(sale.CustomerAddress),
		sale.Subtotal, sale.Tax, sale.Discount, sale.Total, sale.Terms, sale.Status, nullIfEmpty(sale.Notes),
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("comprobante number already exists: %w", err)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, description, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Description,
		item.Quantity, item.UnitPrice, item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, comprobante_number, document_type, date,
		       customer_name, customer_tax_id, customer_phone, customer_address,
		       subtotal, tax, discount, total, terms, status, notes,
		       created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var taxID, phone, address, notes *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Comprobante, &s.DocumentType, &s.Date,
		&s.CustomerName, &taxID, &phone, &address,
		&s.Subtotal, &s.Tax, &s.Discount, &s.Total, &s.Terms, &s.Status, &notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.CustomerTaxID = derefStr(taxID)
	s.CustomerPhone = derefStr(phone)
	s.CustomerAddress = derefStr(address)
	s.Notes = derefStr(notes)
	return &s, nil
}

// GetItemsBySaleID obtiene todas las líneas de una venta.
func (r *SaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, description, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
