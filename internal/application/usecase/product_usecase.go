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

// Mensajes de las comprobaciones contra la base de datos.
const (
	MsgSKUTaken         = "SKU already exists"
	MsgCategoryNotFound = "Category does not exist"
)

// ProductUseCase casos de uso CRUD para productos. El costo se recalcula con las entradas de inventario.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create valida el formulario, comprueba SKU y categoría en la base y persiste.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := in.ProductInput
	p.SKU = strings.TrimSpace(p.SKU)
	if err := uc.Validate(ctx, "", p); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Price:       p.Price.Decimal(),
		Cost:        p.Cost.Decimal(),
		CategoryID:  p.CategoryID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Validate aplica ValidateProduct y, si pasa, las comprobaciones externas.
// selfID excluye al propio producto de la unicidad del SKU en actualizaciones.
func (uc *ProductUseCase) Validate(ctx context.Context, selfID string, p validation.ProductInput) error {
	if err := domain.NewValidationError(validation.ValidateProduct(p)); err != nil {
		return err
	}
	res := validation.ValidateExternal(ctx, p, func(ctx context.Context, p validation.ProductInput) (validation.Result, error) {
		var errs []string
		existing, err := uc.repo.GetBySKU(ctx, p.SKU)
		if err != nil {
			return validation.Result{}, err
		}
		if existing != nil && existing.ID != selfID {
			errs = append(errs, MsgSKUTaken)
		}
		cat, err := uc.categories.GetByID(ctx, p.CategoryID)
		if err != nil {
			return validation.Result{}, err
		}
		if cat == nil {
			errs = append(errs, MsgCategoryNotFound)
		}
		return validation.Invalid(errs...), nil
	})
	return domain.NewValidationError(res)
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update mezcla los campos presentes con el registro actual y valida el resultado completo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, nil
	}
	merged := validation.ProductInput{
		Name:        product.Name,
		Description: product.Description,
		SKU:         product.SKU,
		Price:       validation.NumFromDecimal(product.Price),
		Cost:        validation.NumFromDecimal(product.Cost),
		CategoryID:  product.CategoryID,
		Barcode:     product.Barcode,
	}
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.SKU != nil {
		merged.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Price.IsSet() {
		merged.Price = in.Price
	}
	if in.Cost.IsSet() {
		merged.Cost = in.Cost
	}
	if in.CategoryID != nil {
		merged.CategoryID = *in.CategoryID
	}
	if in.Barcode != nil {
		merged.Barcode = *in.Barcode
	}
	if err := uc.Validate(ctx, product.ID, merged); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(merged.Name)
	product.Description = merged.Description
	product.SKU = merged.SKU
	product.Price = merged.Price.Decimal()
	product.CategoryID = merged.CategoryID
	product.Barcode = merged.Barcode
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	if in.Cost.IsSet() && !merged.Cost.Decimal().Equal(product.Cost) {
		product.Cost = merged.Cost.Decimal()
		if err := uc.repo.UpdateCost(ctx, product.ID, product.Cost); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// List lista productos activos con filtros y paginación (page por defecto 1, limit 20, máximo 100).
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.Normalize()
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = repository.ProductSortName
	}
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:     strings.TrimSpace(in.Search),
		CategoryID: in.CategoryID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		InStock:    in.InStock,
		SortBy:     sortBy,
		SortDesc:   strings.EqualFold(in.SortOrder, "desc"),
		Limit:      in.Limit,
		Offset:     in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.NewPageResponse(in.PageRequest, total),
	}, nil
}

// Delete desactiva un producto (borrado lógico).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.SoftDelete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Price:       p.Price,
		Cost:        p.Cost,
		CategoryID:  p.CategoryID,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
