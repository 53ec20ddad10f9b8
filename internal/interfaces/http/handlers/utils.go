package handlers

import (
	"errors"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/gofiber/fiber/v2"
)

// responderError traduce el error de dominio al código HTTP correspondiente
// con un cuerpo {"error": mensaje}. Los errores no clasificados se reportan
// como 500 con un mensaje genérico para no filtrar detalles internos.
func responderError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, apperr.ErrValidacion):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNoEncontrado):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrNoAutorizado):
		status = fiber.StatusForbidden
	case errors.Is(err, apperr.ErrConflicto):
		status = fiber.StatusConflict
	}

	mensaje := err.Error()
	if status == fiber.StatusInternalServerError {
		mensaje = "error interno del servidor, intente nuevamente"
	}

	return c.Status(status).JSON(fiber.Map{"error": mensaje})
}

// paginacion extrae page y limit de la query con sus valores por defecto
func paginacion(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
