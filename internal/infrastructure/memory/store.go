// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con el mismo contrato de concurrencia optimista que los
// adaptadores de PostgreSQL. Se usa en tests y en entornos sin base de datos.
package memory

import (
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Store guarda categorías, productos y usuarios bajo un único mutex: cada
// operación es atómica respecto a las demás, igual que una sentencia SQL.
type Store struct {
	mu             sync.Mutex
	nextCategoryID int64
	nextProductID  int64
	categories     map[int64]entity.Category
	products       map[int64]entity.Product
	users          map[string]entity.User // key: username
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]entity.Category),
		products:   make(map[int64]entity.Product),
		users:      make(map[string]entity.User),
	}
}

// Categories devuelve el adaptador de categorías sobre este store.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{store: s} }

// Products devuelve el adaptador de productos sobre este store.
func (s *Store) Products() *ProductRepo { return &ProductRepo{store: s} }

// Users devuelve el adaptador de usuarios sobre este store.
func (s *Store) Users() *UserRepo { return &UserRepo{store: s} }
