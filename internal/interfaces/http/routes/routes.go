package routes

import (
	"os"

	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/cafeandino/encuestas-api/internal/infrastructure/cache"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/handlers"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

// SetupRoutes arma las dependencias y registra todas las rutas de la API.
// Las rutas de consulta exigen sesión; las mutaciones administrativas exigen
// además rol de administrador, verificado aquí en el servidor sin importar
// los filtros del cliente.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Middlewares de performance
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Soporte de ETag para cacheo eficiente
	app.Use(etag.New())

	// Medición de duración de las rutas pesadas del tablero
	app.Use(middleware.RequestLogger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "change_me"
	}

	// Repositories
	usuarioRepo := repositories.NewUsuarioRepository(db)
	tipoRepo := repositories.NewTipoEncuestaRepository(db)
	factorRepo := repositories.NewFactorRepository(db)
	fincaRepo := repositories.NewFincaRepository(db)
	encuestaRepo := repositories.NewEncuestaRepository(db)
	medicionRepo := repositories.NewMedicionRepository(db)

	// Use Cases
	factoresCache := cache.New()
	resolutor := usecases.NewResolutorRango()
	authUseCase := usecases.NewAuthUseCase(usuarioRepo)
	factorUseCase := usecases.NewFactorUseCase(factorRepo, factoresCache)
	fincaUseCase := usecases.NewFincaUseCase(fincaRepo)
	encuestaUseCase := usecases.NewEncuestaUseCase(encuestaRepo, fincaRepo, factorUseCase)
	dashboardUseCase := usecases.NewDashboardUseCase(medicionRepo)
	alertaUseCase := usecases.NewAlertaUseCase(medicionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUseCase, jwtSecret)
	tipoHandler := handlers.NewTipoEncuestaHandler(tipoRepo, factorUseCase)
	factorHandler := handlers.NewFactorHandler(factorUseCase)
	fincaHandler := handlers.NewFincaHandler(fincaUseCase)
	encuestaHandler := handlers.NewEncuestaHandler(encuestaUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase, resolutor)
	alertaHandler := handlers.NewAlertaHandler(alertaUseCase, resolutor)

	// Middlewares de identidad
	auth := middleware.NewAuthMiddleware(jwtSecret)
	admin := middleware.NewAdminMiddleware()

	// Autenticación
	app.Post("/auth/register", authHandler.Registrar)
	app.Post("/auth/login", authHandler.Login)
	app.Get("/auth/me", auth, authHandler.Me)

	// Tipos de encuesta y sus factores
	app.Get("/tipos-encuesta", auth, tipoHandler.GetTiposEncuesta)
	app.Get("/tipos-encuesta/:id/factores", auth, tipoHandler.GetFactores)
	app.Post("/tipos-encuesta", auth, admin, tipoHandler.CrearTipoEncuesta)
	app.Put("/tipos-encuesta/:id", auth, admin, tipoHandler.ActualizarTipoEncuesta)

	// Administración de factores
	app.Get("/factores/:id", auth, admin, factorHandler.GetFactor)
	app.Get("/factores/:id/siguiente-codigo", auth, admin, factorHandler.SiguienteCodigo)
	app.Post("/factores", auth, admin, factorHandler.CrearFactor)
	app.Put("/factores/:id", auth, admin, factorHandler.ActualizarFactor)

	// Fincas
	app.Get("/fincas", auth, fincaHandler.GetFincas)
	app.Get("/fincas/:id", auth, fincaHandler.GetFinca)
	app.Post("/fincas", auth, fincaHandler.CrearFinca)
	app.Put("/fincas/:id", auth, fincaHandler.ActualizarFinca)
	app.Delete("/fincas/:id", auth, fincaHandler.EliminarFinca)

	// Encuestas
	app.Get("/encuestas", auth, encuestaHandler.GetEncuestas)
	app.Get("/encuestas/export", auth, encuestaHandler.ExportarEncuestas)
	app.Get("/encuestas/:id", auth, encuestaHandler.GetEncuesta)
	app.Post("/encuestas", auth, encuestaHandler.CrearEncuesta)
	app.Put("/encuestas/:id", auth, encuestaHandler.ActualizarEncuesta)

	// Tablero de monitoreo y alertas
	app.Get("/data_tth", auth, dashboardHandler.GetSeries)
	app.Get("/data_tth/monthly_summary", auth, dashboardHandler.GetResumenMensual)
	app.Get("/alertas", auth, alertaHandler.GetAlertas)
	app.Get("/alertas/estilos", auth, alertaHandler.GetEstilos)
}
