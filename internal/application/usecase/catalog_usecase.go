package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serranotex/serrano-tex-ims/internal/application/dto"
	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

// CatalogUseCase categorías y ubicaciones: datos de referencia de productos e inventario.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	locations  repository.LocationRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, locations repository.LocationRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, locations: locations}
}

// CreateCategory crea una categoría. Código duplicado -> ErrDuplicate.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	now := time.Now()
	c := &entity.Category{
		ID:        uuid.New().String(),
		ParentID:  in.ParentID,
		Name:      strings.TrimSpace(in.Name),
		Code:      strings.ToUpper(strings.TrimSpace(in.Code)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, ParentID: c.ParentID, Name: c.Name, Code: c.Code}, nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, ParentID: c.ParentID, Name: c.Name, Code: c.Code})
	}
	return out, nil
}

// CreateLocation crea una ubicación. Nombre duplicado -> ErrDuplicate.
func (uc *CatalogUseCase) CreateLocation(ctx context.Context, in dto.LocationRequest) (*dto.LocationResponse, error) {
	now := time.Now()
	l := &entity.Location{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locations.Create(ctx, l); err != nil {
		return nil, err
	}
	return &dto.LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address}, nil
}

// ListLocations lista todas las ubicaciones.
func (uc *CatalogUseCase) ListLocations(ctx context.Context) ([]dto.LocationResponse, error) {
	list, err := uc.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address})
	}
	return out, nil
}
