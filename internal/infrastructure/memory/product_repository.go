package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	store *Store
}

// FindByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// FindProducts lista productos filtrados, ordenados y paginados.
func (r *ProductRepo) FindProducts(_ context.Context, search catalog.SearchParams) ([]*entity.Product, catalog.PageInfo, error) {
	search.ApplyDefaults()

	r.store.mu.Lock()
	matched := make([]entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if containsFold(p.Name, search.Filter) {
			matched = append(matched, p)
		}
	}
	r.store.mu.Unlock()

	sortProducts(matched, search)
	page := slicePage(len(matched), search)
	list := make([]*entity.Product, 0, page.size)
	for i := page.start; i < page.start+page.size; i++ {
		p := matched[i]
		list = append(list, &p)
	}
	return list, catalog.NewPageInfo(len(matched), search.Page, search.PageSize), nil
}

// Create persiste un nuevo producto; la categoría referenciada debe existir.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryMissing
	}
	r.store.nextProductID++
	product.ID = r.store.nextProductID
	product.Name = strings.TrimSpace(product.Name)
	product.Description = strings.TrimSpace(product.Description)
	product.Version = uuid.NewString()
	r.store.products[product.ID] = *product
	return nil
}

// Update aplica compare-and-swap sobre el token de versión; mismo contrato
// que el adaptador de PostgreSQL.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) (*catalog.ConflictReport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.products[product.ID]
	if !ok {
		return catalog.CompareProducts(nil, product), nil
	}
	if current.Version != product.Version {
		return catalog.CompareProducts(&current, product), nil
	}
	if _, ok := r.store.categories[product.CategoryID]; !ok {
		return nil, domain.ErrCategoryMissing
	}
	current.Name = strings.TrimSpace(product.Name)
	current.Description = strings.TrimSpace(product.Description)
	current.ImageRef = product.ImageRef
	current.CategoryID = product.CategoryID
	current.Version = uuid.NewString()
	r.store.products[product.ID] = current
	product.Version = current.Version
	return nil, nil
}

// Delete elimina un producto; un ID inexistente es un no-op silencioso.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	return nil
}

// NameExists verifica existencia por nombre normalizado.
func (r *ProductRepo) NameExists(_ context.Context, name string) (bool, error) {
	key := catalog.NormalizeName(name)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if catalog.NormalizeName(p.Name) == key {
			return true, nil
		}
	}
	return false, nil
}

func sortProducts(list []entity.Product, search catalog.SearchParams) {
	desc := search.SortOrder == catalog.SortDescending
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		var cmp int
		switch search.SortBy {
		case catalog.SortByID:
			cmp = compareInt64(a.ID, b.ID)
		case catalog.SortByDescription:
			cmp = compareFold(a.Description, b.Description)
		case catalog.SortByImage:
			cmp = compareFold(a.ImageRef, b.ImageRef)
		case catalog.SortByCategory:
			cmp = compareInt64(a.CategoryID, b.CategoryID)
		default:
			// Name o campo desconocido: orden natural por nombre.
			cmp = compareFold(a.Name, b.Name)
		}
		if cmp == 0 {
			return a.ID < b.ID // desempate estable por id ascendente
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
