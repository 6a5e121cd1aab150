package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// FindByID devuelve (nil, nil) cuando no existe. Update aplica un
// compare-and-swap con la versión enviada: si no coincide devuelve el
// ConflictReport con los datos vigentes sin aplicar la escritura; si
// coincide, persiste y asigna un token de versión nuevo. Delete de un id
// inexistente es un no-op silencioso.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	FindCategories(ctx context.Context, search catalog.SearchParams) ([]*entity.Category, catalog.PageInfo, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) (*catalog.ConflictReport, error)
	Delete(ctx context.Context, id int64) error
	NameExists(ctx context.Context, name string) (bool, error)
	InUse(ctx context.Context, id int64) (bool, error)
}
