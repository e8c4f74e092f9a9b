package entity

import (
	"time"

	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
)

// Estados de usuario.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User representa un usuario del sistema. Role es inmutable una vez asignado.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Role         access.Role
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
