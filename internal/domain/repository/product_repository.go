package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Mismo contrato de concurrencia optimista que CategoryRepository.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindProducts(ctx context.Context, search catalog.SearchParams) ([]*entity.Product, catalog.PageInfo, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) (*catalog.ConflictReport, error)
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string) (bool, error)
}
