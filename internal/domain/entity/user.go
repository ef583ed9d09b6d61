package entity

import "time"

// Roles de los usuarios del punto de venta.
const (
	RoleAdmin  = "admin"
	RoleCajero = "cajero"
)

// User es un operador del sistema (terminal de caja o administración).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string // admin | cajero
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
