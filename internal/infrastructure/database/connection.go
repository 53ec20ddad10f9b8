package database

import (
	"context"

	"gorm.io/gorm"
)

// Clave de contexto que indica que el timezone ya fue configurado
type timezoneKey struct{}

// SetTimezoneMiddleware crea un middleware de GORM para fijar el timezone
// de la sesión en hora de Colombia antes de cada consulta
func SetTimezoneMiddleware() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		// Verificar si ya se está procesando una configuración de timezone
		if _, ok := db.Statement.Context.Value(timezoneKey{}).(bool); ok {
			return // Evita recursión infinita
		}

		// Marca el contexto para evitar recursión
		ctx := context.WithValue(db.Statement.Context, timezoneKey{}, true)

		tx := db.WithContext(ctx)
		tx.Exec("SET timezone = 'America/Bogota'")
	}
}

// RegisterMiddlewares registra todos los middlewares necesarios en GORM
func RegisterMiddlewares(db *gorm.DB) {
	// Solo en el callback de consulta para evitar overhead innecesario
	db.Callback().Query().Before("gorm:query").Register("set_timezone_before_query", SetTimezoneMiddleware())
}
