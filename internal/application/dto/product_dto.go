package dto

// ProductRequest entrada para crear o actualizar un producto. En
// actualizaciones Version debe traer el token leído; en creaciones se ignora.
type ProductRequest struct {
	Name        string `json:"name" validate:"required,max=250"`
	Description string `json:"description" validate:"required,max=250"`
	ImageRef    string `json:"imageRef" validate:"required"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	Version     string `json:"version"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageRef    string `json:"imageRef"`
	CategoryID  int64  `json:"categoryId"`
	Version     string `json:"version"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
