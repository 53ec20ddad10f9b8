package entities

import (
	"time"

	"github.com/google/uuid"
)

// Encuesta representa una encuesta agronómica aplicada sobre una finca en una
// fecha dada. Mantiene una respuesta por cada factor activo de su tipo al
// momento de crearla. Mientras completada sea verdadero, todos los campos
// excepto la propia bandera son de solo lectura; la bandera puede volverse a
// falso para reabrir la encuesta.
type Encuesta struct {
	ID              uint      `json:"id" gorm:"primaryKey;column:id"`
	FechaAplicacion time.Time `json:"fecha_aplicacion" gorm:"column:fecha_aplicacion;type:date"`
	TipoEncuestaID  uint      `json:"tipo_encuesta_id" gorm:"column:tipo_encuesta_id"`
	UsuarioID       uuid.UUID `json:"usuario_id" gorm:"column:usuario_id;type:uuid"`
	FincaID         uint      `json:"finca_id" gorm:"column:finca_id"`
	Observaciones   string    `json:"observaciones" gorm:"column:observaciones"`
	Completada      bool      `json:"completada" gorm:"column:completada;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relaciones
	TipoEncuesta TipoEncuesta      `json:"tipo_encuesta,omitempty" gorm:"foreignKey:TipoEncuestaID"`
	Finca        Finca             `json:"finca,omitempty" gorm:"foreignKey:FincaID"`
	Respuestas   []RespuestaFactor `json:"respuestas,omitempty" gorm:"foreignKey:EncuestaID"`
}

// TableName define el nombre de la tabla
func (Encuesta) TableName() string {
	return "encuestas"
}

// RespuestaFactor representa la respuesta a un factor dentro de una encuesta.
// El valor posible referenciado debe pertenecer al conjunto de valores del
// factor declarado; una referencia cruzada entre factores es un error de
// validación.
type RespuestaFactor struct {
	ID             uint      `json:"id" gorm:"primaryKey;column:id"`
	EncuestaID     uint      `json:"encuesta_id" gorm:"column:encuesta_id"`
	FactorID       uint      `json:"factor_id" gorm:"column:factor_id"`
	ValorPosibleID uint      `json:"valor_posible_id" gorm:"column:valor_posible_id"`
	RespuestaTexto string    `json:"respuesta_texto" gorm:"column:respuesta_texto"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName define el nombre de la tabla
func (RespuestaFactor) TableName() string {
	return "respuestas_factor"
}
