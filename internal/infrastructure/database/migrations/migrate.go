package migrations

import (
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate crea o actualiza el esquema de todas las tablas de la aplicación
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Usuario{},
		&entities.TipoEncuesta{},
		&entities.Factor{},
		&entities.ValorPosible{},
		&entities.Finca{},
		&entities.Encuesta{},
		&entities.RespuestaFactor{},
		&entities.Medicion{},
	)
}
