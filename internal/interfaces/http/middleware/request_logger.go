package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger es un middleware que mide el tiempo de respuesta de las rutas
// de consulta pesadas del tablero
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Rutas cuya duración interesa monitorear
		monitoredRoutes := []string{
			"/data_tth",
			"/alertas",
			"/encuestas",
		}

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[PERF] %s %s - %d - Duración: %v - Query: %s",
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
			c.Request().URI().QueryArgs().String(),
		)

		return err
	}
}
