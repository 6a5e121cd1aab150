package memory

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	store *Store
}

// Create persiste un nuevo usuario; el username debe ser único.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.Username]; ok {
		return domain.ErrUsernameAlreadyExists
	}
	r.store.users[user.Username] = *user
	return nil
}

// FindByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// FindByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[username]; ok {
		return &u, nil
	}
	return nil, nil
}
