package dto

// CategoryRequest entrada para crear o actualizar una categoría. En
// actualizaciones Version debe traer el token leído; en creaciones se ignora.
type CategoryRequest struct {
	Name    string `json:"name" validate:"required,max=250"`
	Version string `json:"version"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
