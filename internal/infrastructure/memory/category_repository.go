package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// FindByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// FindCategories lista categorías filtradas, ordenadas y paginadas.
func (r *CategoryRepo) FindCategories(_ context.Context, search catalog.SearchParams) ([]*entity.Category, catalog.PageInfo, error) {
	search.ApplyDefaults()

	r.store.mu.Lock()
	matched := make([]entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		if containsFold(c.Name, search.Filter) {
			matched = append(matched, c)
		}
	}
	r.store.mu.Unlock()

	sortCategories(matched, search)
	page := slicePage(len(matched), search)
	list := make([]*entity.Category, 0, page.size)
	for i := page.start; i < page.start+page.size; i++ {
		c := matched[i]
		list = append(list, &c)
	}
	return list, catalog.NewPageInfo(len(matched), search.Page, search.PageSize), nil
}

// Create persiste una nueva categoría: asigna ID y el token de versión inicial.
func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextCategoryID++
	category.ID = r.store.nextCategoryID
	category.Name = strings.TrimSpace(category.Name)
	category.Version = uuid.NewString()
	r.store.categories[category.ID] = *category
	return nil
}

// Update aplica compare-and-swap sobre el token de versión bajo el mutex del
// store: verificación y escritura son una sola unidad atómica.
func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) (*catalog.ConflictReport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.categories[category.ID]
	if !ok {
		return catalog.CompareCategories(nil, category), nil
	}
	if current.Version != category.Version {
		return catalog.CompareCategories(&current, category), nil
	}
	current.Name = strings.TrimSpace(category.Name)
	current.Version = uuid.NewString()
	r.store.categories[category.ID] = current
	category.Version = current.Version
	return nil, nil
}

// Delete elimina una categoría; un ID inexistente es un no-op silencioso.
func (r *CategoryRepo) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.categories, id)
	return nil
}

// NameExists verifica existencia por nombre normalizado.
func (r *CategoryRepo) NameExists(_ context.Context, name string) (bool, error) {
	key := catalog.NormalizeName(name)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.categories {
		if catalog.NormalizeName(c.Name) == key {
			return true, nil
		}
	}
	return false, nil
}

// InUse verifica si algún producto referencia la categoría.
func (r *CategoryRepo) InUse(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.CategoryID == id {
			return true, nil
		}
	}
	return false, nil
}

func sortCategories(list []entity.Category, search catalog.SearchParams) {
	desc := search.SortOrder == catalog.SortDescending
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		var cmp int
		switch search.SortBy {
		case catalog.SortByID:
			cmp = compareInt64(a.ID, b.ID)
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
