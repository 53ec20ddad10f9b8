package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes agrega índices para acelerar las consultas más frecuentes
func AddIndexes(db *gorm.DB) error {
	// Índices de la tabla de encuestas
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_encuestas_fecha_aplicacion ON encuestas (fecha_aplicacion)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_encuestas_tipo_encuesta_id ON encuestas (tipo_encuesta_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_encuestas_finca_id ON encuestas (finca_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_encuestas_usuario_id ON encuestas (usuario_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_encuestas_completada ON encuestas (completada)").Error; err != nil {
		return err
	}

	// Índices de la tabla de respuestas
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respuestas_factor_encuesta_id ON respuestas_factor (encuesta_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respuestas_factor_factor_id ON respuestas_factor (factor_id)").Error; err != nil {
		return err
	}

	// Índices de la tabla de factores
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_factores_tipo_encuesta_id ON factores (tipo_encuesta_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_valores_posibles_factor_id ON valores_posibles (factor_id)").Error; err != nil {
		return err
	}

	// Índice de la tabla de mediciones, la más consultada por el tablero
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_mediciones_fecha_hora ON mediciones (fecha_hora)").Error; err != nil {
		return err
	}

	return nil
}
