package entities

import "time"

// Factor representa un factor categórico de un tipo de encuesta. Un factor
// pertenece exactamente a un tipo de encuesta y solo los factores activos se
// ofrecen al componer una encuesta nueva. Nunca se elimina físicamente: se
// desactiva para preservar la integridad de encuestas históricas.
type Factor struct {
	ID             uint      `json:"id" gorm:"primaryKey;column:id"`
	Nombre         string    `json:"nombre" gorm:"column:nombre"`
	Descripcion    string    `json:"descripcion" gorm:"column:descripcion"`
	Categoria      string    `json:"categoria" gorm:"column:categoria"`
	Orden          int       `json:"orden" gorm:"column:orden"`
	Activo         bool      `json:"activo" gorm:"column:activo;default:true"`
	TipoEncuestaID uint      `json:"tipo_encuesta_id" gorm:"column:tipo_encuesta_id"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relaciones
	ValoresPosibles []ValorPosible `json:"valores_posibles,omitempty" gorm:"foreignKey:FactorID"`
}

// TableName define el nombre de la tabla
func (Factor) TableName() string {
	return "factores"
}

// ValorPosible representa una opción de respuesta codificada de un factor.
// El código es un entero positivo asignado por el administrador, usado para
// puntuación posterior; no se exige contigüidad. Todo factor mantiene al
// menos un valor posible.
type ValorPosible struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	FactorID    uint      `json:"factor_id" gorm:"column:factor_id"`
	Valor       string    `json:"valor" gorm:"column:valor"`
	Codigo      int       `json:"codigo" gorm:"column:codigo"`
	Descripcion string    `json:"descripcion" gorm:"column:descripcion"`
	Activo      bool      `json:"activo" gorm:"column:activo;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName define el nombre de la tabla
func (ValorPosible) TableName() string {
	return "valores_posibles"
}
