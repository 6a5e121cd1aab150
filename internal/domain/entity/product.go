package entity

// Product representa un producto del catálogo. CategoryID debe resolver a una
// Category existente al momento de la escritura.
type Product struct {
	ID          int64
	Name        string
	Description string
	ImageRef    string
	CategoryID  int64
	Version     string
}
