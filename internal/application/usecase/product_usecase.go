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

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// List lista productos con filtro, orden y paginación.
func (uc *ProductUseCase) List(ctx context.Context, in dto.SearchRequest) (*dto.ProductListResponse, error) {
	list, page, err := uc.repo.FindProducts(ctx, toSearchParams(in))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  toPageResponse(page),
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create crea un nuevo producto tras validar nombre, unicidad y categoría.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := uc.canAdd(ctx, in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageRef:    in.ImageRef,
		CategoryID:  in.CategoryID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto con concurrencia optimista: si otro usuario
// escribió primero, devuelve el reporte de conflicto en lugar de aplicar.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (*dto.ProductResponse, *catalog.ConflictReport, error) {
	if err := uc.canUpdate(ctx, id, in); err != nil {
		return nil, nil, err
	}
	product := &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageRef:    in.ImageRef,
		CategoryID:  in.CategoryID,
		Version:     in.Version,
	}
	report, err := uc.repo.Update(ctx, product)
	if err != nil {
		return nil, nil, err
	}
	if report != nil {
		return nil, report, nil
	}
	return toProductResponse(product), nil, nil
}

// Delete elimina un producto existente.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	current, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) canAdd(ctx context.Context, in dto.ProductRequest) error {
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
	return uc.categoryExists(ctx, in.CategoryID)
}

func (uc *ProductUseCase) canUpdate(ctx context.Context, id int64, in dto.ProductRequest) error {
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
	if catalog.NormalizeName(in.Name) != catalog.NormalizeName(current.Name) {
		exists, err := uc.repo.NameExists(ctx, in.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicate
		}
	}
	return uc.categoryExists(ctx, in.CategoryID)
}

func (uc *ProductUseCase) categoryExists(ctx context.Context, categoryID int64) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryMissing
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageRef:    p.ImageRef,
		CategoryID:  p.CategoryID,
		Version:     p.Version,
	}
}
