package entities

import "time"

// TipoEncuesta representa un tipo de encuesta administrado como dato de
// referencia. Solo un administrador lo crea o desactiva; desde el flujo de
// captura de encuestas es inmutable.
type TipoEncuesta struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Nombre      string    `json:"nombre" gorm:"column:nombre"`
	Descripcion string    `json:"descripcion" gorm:"column:descripcion"`
	Activo      bool      `json:"activo" gorm:"column:activo;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relaciones
	Factores []Factor `json:"factores,omitempty" gorm:"foreignKey:TipoEncuestaID"`
}

// TableName define el nombre de la tabla
func (TipoEncuesta) TableName() string {
	return "tipos_encuesta"
}
