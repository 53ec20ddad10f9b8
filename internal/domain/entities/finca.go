package entities

import (
	"time"

	"github.com/google/uuid"
)

// Finca representa una finca cafetera registrada por un usuario. Las
// coordenadas son opcionales e independientes: puede existir latitud sin
// longitud y viceversa.
type Finca struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Nombre      string    `json:"nombre" gorm:"column:nombre"`
	Ubicacion   string    `json:"ubicacion" gorm:"column:ubicacion"`
	Latitud     *float64  `json:"latitud,omitempty" gorm:"column:latitud"`
	Longitud    *float64  `json:"longitud,omitempty" gorm:"column:longitud"`
	Propietario string    `json:"propietario" gorm:"column:propietario"`
	UsuarioID   uuid.UUID `json:"usuario_id" gorm:"column:usuario_id;type:uuid"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relaciones
	Encuestas []Encuesta `json:"encuestas,omitempty" gorm:"foreignKey:FincaID"`
}

// TableName define el nombre de la tabla
func (Finca) TableName() string {
	return "fincas"
}
