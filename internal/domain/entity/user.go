package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema (tenant único).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifica a quien ejecuta una operación. El núcleo no autentica,
// solo registra esta identidad en el libro y en la bitácora.
type Actor struct {
	ID   string
	Name string
	Role string
}
