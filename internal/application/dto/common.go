package dto

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	PageIndex   int  `json:"pageIndex"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// SearchRequest parámetros de búsqueda para listados: filtro por nombre,
// campo y sentido de orden, y paginación.
type SearchRequest struct {
	Filter    string `query:"filter"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=Ascending Descending"`
	Page      int    `query:"page" validate:"min=0"`
	PageSize  int    `query:"pageSize" validate:"min=0,max=100"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConflictResponse cuerpo 409 cuando una escritura concurrente ganó primero:
// un mensaje por campo divergente más el cierre, y el token de versión vigente
// para poder reintentar.
type ConflictResponse struct {
	Code     string   `json:"code"`
	Messages []string `json:"messages"`
	Version  string   `json:"version,omitempty"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
