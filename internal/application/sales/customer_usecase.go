package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/ventas-pos/internal/application/dto"
	"github.com/tu-usuario/ventas-pos/internal/domain"
	"github.com/tu-usuario/ventas-pos/internal/domain/entity"
	"github.com/tu-usuario/ventas-pos/internal/domain/repository"
	"github.com/tu-usuario/ventas-pos/pkg/normalize"
)

// CustomerUseCase administra el directorio de clientes del punto de venta.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List devuelve clientes. Con q no vacío busca por nombre (insensible a
// tildes y mayúsculas) o por identificación fiscal exacta.
func (uc *CustomerUseCase) List(ctx context.Context, q string, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	var (
		customers []*entity.Customer
		err       error
	)
	if q != "" {
		customers, err = uc.repo.Search(normalize.Fold(q), page.Limit)
	} else {
		customers, err = uc.repo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
