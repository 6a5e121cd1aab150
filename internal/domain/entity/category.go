package entity

// Category representa una categoría del catálogo.
// Version es un token opaco que cambia en cada escritura exitosa
// (concurrencia optimista); nunca lo asigna el cliente en Create.
type Category struct {
	ID      int64
	Name    string
	Version string
}
