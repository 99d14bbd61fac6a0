package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleUser   = "user"
)

// User representa una identidad del sistema. El teléfono es el identificador
// principal (único); el email es opcional pero también único cuando existe.
type User struct {
	ID           int64
	Name         string
	Phone        string
	Email        string // opcional; vacío = sin email
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	Role         string // admin, vendor, user
	IsActive     bool
	CreatedAt    time.Time
}
