// Package ports define los puertos de aplicación que no pertenecen a un único agregado.
package ports

import (
	"context"

	"github.com/serranotex/serrano-tex-ims/internal/domain/repository"
)

// TxRepos repositorios atados a la misma transacción.
type TxRepos struct {
	Products  repository.ProductRepository
	Inventory repository.InventoryRepository
	Movements repository.InventoryMovementRepository
	Sales     repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD: Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
