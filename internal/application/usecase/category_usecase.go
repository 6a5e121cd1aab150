// Package usecase contiene los casos de uso CRUD del catálogo. Las reglas de
// negocio (unicidad de nombre, integridad referencial, categorías en uso) se
// verifican acá, antes de tocar la persistencia; la primera regla que falla
// corta la evaluación.
package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

const maxNameLength = 250

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista categorías con filtro, orden y paginación.
func (uc *CategoryUseCase) List(ctx context.Context, in dto.SearchRequest) (*dto.CategoryListResponse, error) {
	list, page, err := uc.repo.FindCategories(ctx, toSearchParams(in))
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  toPageResponse(page),
	}, nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Create crea una nueva categoría tras validar nombre y unicidad.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.canAdd(ctx, in); err != nil {
		return nil, err
	}
	category := &entity.Category{Name: strings.TrimSpace(in.Name)}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría con concurrencia optimista: si otro usuario
// escribió primero, devuelve el reporte de conflicto en lugar de aplicar.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, *catalog.ConflictReport, error) {
	if err := uc.canUpdate(ctx, id, in); err != nil {
		return nil, nil, err
	}
	category := &entity.Category{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		Version: in.Version,
	}
	report, err := uc.repo.Update(ctx, category)
	if err != nil {
		return nil, nil, err
	}
	if report != nil {
		return nil, report, nil
	}
	return toCategoryResponse(category), nil, nil
}

// Delete elimina una categoría existente si ningún producto la referencia.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrInUse
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CategoryUseCase) canAdd(ctx context.Context, in dto.CategoryRequest) error {
	if err := validName(in.Name); err != nil {
		return err
	}
	exists, err := uc.repo.NameExists(ctx, in.Name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicate
	}
	return nil
}

func (uc *CategoryUseCase) canUpdate(ctx context.Context, id int64, in dto.CategoryRequest) error {
	if err := validName(in.Name); err != nil {
		return err
	}
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	// Renombrar sin cambiar el nombre normalizado (p.ej. solo mayúsculas)
	// no cuenta como duplicado: el único registro con ese nombre es este.
	if catalog.NormalizeName(in.Name) == catalog.NormalizeName(current.Name) {
		return nil
	}
	exists, err := uc.repo.NameExists(ctx, in.Name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicate
	}
	return nil
}

func validName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(trimmed) > maxNameLength {
		return domain.ErrInvalidInput
	}
	return nil
}

func toSearchParams(in dto.SearchRequest) catalog.SearchParams {
	return catalog.SearchParams{
		Filter:    strings.TrimSpace(in.Filter),
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
		Page:      in.Page,
		PageSize:  in.PageSize,
	}
}

func toPageResponse(page catalog.PageInfo) dto.PageResponse {
	return dto.PageResponse{
		PageIndex:   page.PageIndex,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:      c.ID,
		Name:    c.Name,
		Version: c.Version,
	}
}
