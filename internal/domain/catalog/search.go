package catalog

import "strings"

// Direcciones de orden aceptadas por los listados.
const (
	SortAscending  = "Ascending"
	SortDescending = "Descending"
)

// Campos ordenables. Los adaptadores mantienen una allow-list por entidad;
// un campo desconocido cae al orden natural (nombre ascendente) en lugar de
// fallar, decisión deliberada cubierta por tests.
const (
	SortByID          = "Id"
	SortByName        = "Name"
	SortByDescription = "Description"
	SortByImage       = "Image"
	SortByCategory    = "CategoryId"
)

// Límites de paginación de los listados.
const (
	DefaultPageSize = 15
	MaxPageSize     = 100
)

// SearchParams parámetros de filtro, orden y paginación para los listados.
// Filter es un substring case-insensitive sobre el nombre; vacío trae todo.
type SearchParams struct {
	Filter    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ApplyDefaults normaliza los parámetros: página 1, tamaño 15, nombre
// ascendente. Cualquier SortOrder distinto de Descending se trata como
// Ascending.
func (p *SearchParams) ApplyDefaults() {
	p.Filter = strings.TrimSpace(p.Filter)
	if p.SortBy == "" {
		p.SortBy = SortByName
	}
	if p.SortOrder != SortDescending {
		p.SortOrder = SortAscending
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset devuelve el inicio del slice [(page-1)*size, page*size).
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageInfo metadatos de paginación que acompañan a cada listado.
type PageInfo struct {
	PageIndex  int
	PageSize   int
	TotalCount int
	TotalPages int
}

// NewPageInfo calcula los metadatos: TotalPages = ceil(count/pageSize).
func NewPageInfo(totalCount, pageIndex, pageSize int) PageInfo {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PageInfo{
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// HasPrevious indica si existe una página anterior.
func (p PageInfo) HasPrevious() bool { return p.PageIndex > 1 }

// HasNext indica si existe una página siguiente.
func (p PageInfo) HasNext() bool { return p.PageIndex < p.TotalPages }
