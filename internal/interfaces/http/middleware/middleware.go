package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupMiddlewares registra los middlewares globales de la aplicación
func SetupMiddlewares(app *fiber.App) {
	// Configuración de CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://cafeandino-dashboard.vercel.app, http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutos
	}))
}
