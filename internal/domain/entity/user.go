package entity

import "time"

// User representa un usuario del sistema (login por username + password).
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // hash bcrypt, nunca en texto plano después de persistir
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
