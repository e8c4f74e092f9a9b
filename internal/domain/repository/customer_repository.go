package repository

import (
	"context"

	"github.com/serranotex/serrano-tex-ims/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// List filtra por nombre, email o empresa cuando search no es vacío.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, int, error)
}
