package repository

import (
	"context"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (bodegas y tiendas).
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context) ([]*entity.Location, error)
}
