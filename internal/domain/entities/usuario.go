package entities

import (
	"time"

	"github.com/google/uuid"
)

// RolUsuario define el rol de un usuario dentro del sistema
type RolUsuario string

const (
	RolAdmin        RolUsuario = "admin"
	RolUsuarioComun RolUsuario = "usuario"
)

// IsValid verifica que el rol sea uno de los valores conocidos
func (r RolUsuario) IsValid() bool {
	switch r {
	case RolAdmin, RolUsuarioComun:
		return true
	}
	return false
}

// Usuario representa un usuario del sistema
type Usuario struct {
	ID           uuid.UUID  `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Nombre       string     `json:"nombre" gorm:"column:nombre"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Rol          RolUsuario `json:"rol" gorm:"column:rol;default:'usuario'"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`

	// Relaciones
	Fincas    []Finca    `json:"fincas,omitempty" gorm:"foreignKey:UsuarioID"`
	Encuestas []Encuesta `json:"encuestas,omitempty" gorm:"foreignKey:UsuarioID"`
}

// TableName define el nombre de la tabla
func (Usuario) TableName() string {
	return "usuarios"
}

// EsAdmin indica si el usuario tiene rol de administrador
func (u *Usuario) EsAdmin() bool {
	return u.Rol == RolAdmin
}
