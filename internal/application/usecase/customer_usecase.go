package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// MsgEmailTaken el email ya pertenece a otro cliente.
const MsgEmailTaken = "Email already belongs to another customer"

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Validate aplica ValidateCustomer y la unicidad del email (si viene).
func (uc *CustomerUseCase) Validate(ctx context.Context, selfID string, in validation.CustomerInput) error {
	if err := domain.NewValidationError(validation.ValidateCustomer(in)); err != nil {
		return err
	}
	if in.Email == "" {
		return nil
	}
	res := validation.ValidateExternal(ctx, in.Email, func(ctx context.Context, email string) (validation.Result, error) {
		existing, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return validation.Result{}, err
		}
		if existing != nil && existing.ID != selfID {
			return validation.Invalid(MsgEmailTaken), nil
		}
		return validation.Valid(), nil
	})
	return domain.NewValidationError(res)
}

// Create valida y persiste un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.Validate(ctx, "", in.CustomerInput); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{ID: uuid.New().String(), CreatedAt: now}
	applyCustomer(c, in.CustomerInput, now)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID obtiene un cliente. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update reemplaza los datos del cliente. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if err := uc.Validate(ctx, c.ID, in.CustomerInput); err != nil {
		return nil, err
	}
	applyCustomer(c, in.CustomerInput, time.Now())
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista clientes con búsqueda y paginación.
func (uc *CustomerUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(search), page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// Delete elimina un cliente sin ventas.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyCustomer(c *entity.Customer, in validation.CustomerInput, now time.Time) {
	c.Name = strings.TrimSpace(in.Name)
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = in.Phone
	c.Address = in.Address
	c.Company = in.Company
	c.UpdatedAt = now
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Company:   c.Company,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
