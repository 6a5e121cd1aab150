package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce
// a los mensajes del contrato y al status code correspondiente.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrInUse           = errors.New("recurso en uso")
	ErrCategoryMissing = errors.New("la categoría referenciada no existe")

	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrUnauthorized          = errors.New("no autorizado")
)
