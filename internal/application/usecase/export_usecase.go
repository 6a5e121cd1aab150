package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// exportPageSize tamaño de página usado para recorrer el catálogo completo.
const exportPageSize = 100

// CatalogSection una categoría con sus productos, lista para renderizar.
type CatalogSection struct {
	Category entity.Category
	Products []entity.Product
}

// CatalogPDFGenerator puerto para el render del catálogo en PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, sections []CatalogSection) ([]byte, error)
}

// ExportUseCase exporta el catálogo completo como documento PDF.
type ExportUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	pdf          CatalogPDFGenerator
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, pdf CatalogPDFGenerator) *ExportUseCase {
	return &ExportUseCase{categoryRepo: categoryRepo, productRepo: productRepo, pdf: pdf}
}

// ProductCatalogPDF arma el catálogo agrupado por categoría (categorías por
// nombre, productos por nombre dentro de cada una) y lo renderiza como PDF.
func (uc *ExportUseCase) ProductCatalogPDF(ctx context.Context) ([]byte, error) {
	categories, err := uc.allCategories(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]entity.Product, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], *p)
	}

	sections := make([]CatalogSection, 0, len(categories))
	for _, c := range categories {
		sections = append(sections, CatalogSection{
			Category: *c,
			Products: byCategory[c.ID],
		})
	}
	return uc.pdf.GenerateCatalogPDF(ctx, sections)
}

func (uc *ExportUseCase) allCategories(ctx context.Context) ([]*entity.Category, error) {
	var all []*entity.Category
	for page := 1; ; page++ {
		list, info, err := uc.categoryRepo.FindCategories(ctx, catalog.SearchParams{
			SortBy: catalog.SortByName, Page: page, PageSize: exportPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
		if !info.HasNext() {
			return all, nil
		}
	}
}

func (uc *ExportUseCase) allProducts(ctx context.Context) ([]*entity.Product, error) {
	var all []*entity.Product
	for page := 1; ; page++ {
		list, info, err := uc.productRepo.FindProducts(ctx, catalog.SearchParams{
			SortBy: catalog.SortByName, Page: page, PageSize: exportPageSize,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
		if !info.HasNext() {
			return all, nil
		}
	}
}
