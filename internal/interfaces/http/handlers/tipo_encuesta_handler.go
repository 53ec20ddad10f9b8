package handlers

import (
	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/gofiber/fiber/v2"
)

// TipoEncuestaHandler maneja requisiciones de tipos de encuesta
type TipoEncuestaHandler struct {
	tipoRepo      *repositories.TipoEncuestaRepository
	factorUseCase *usecases.FactorUseCase
}

// NewTipoEncuestaHandler crea una nueva instancia de TipoEncuestaHandler
func NewTipoEncuestaHandler(tipoRepo *repositories.TipoEncuestaRepository, factorUseCase *usecases.FactorUseCase) *TipoEncuestaHandler {
	return &TipoEncuestaHandler{
		tipoRepo:      tipoRepo,
		factorUseCase: factorUseCase,
	}
}

// GetTiposEncuesta retorna los tipos de encuesta
// @Summary Lista tipos de encuesta
// @Description Retorna los tipos de encuesta; por defecto solo los activos
// @Tags tipos-encuesta
// @Produce json
// @Param incluir_inactivos query bool false "Incluir tipos desactivados" default(false)
// @Success 200 {array} entities.TipoEncuesta
// @Router /tipos-encuesta [get]
func (h *TipoEncuestaHandler) GetTiposEncuesta(c *fiber.Ctx) error {
	incluirInactivos := c.Query("incluir_inactivos", "false") == "true"

	tipos, err := h.tipoRepo.GetTiposEncuesta(!incluirInactivos)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(tipos)
}

// GetFactores retorna los factores activos de un tipo de encuesta
// @Summary Factores de un tipo de encuesta
// @Description Retorna los factores activos del tipo con sus valores posibles activos. Un tipo sin factores retorna lista vacía.
// @Tags tipos-encuesta
// @Produce json
// @Param id path int true "ID del tipo de encuesta"
// @Success 200 {array} entities.Factor
// @Failure 404 {object} map[string]interface{} "Tipo no encontrado"
// @Router /tipos-encuesta/{id}/factores [get]
func (h *TipoEncuestaHandler) GetFactores(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	factores, err := h.factorUseCase.LoadFactoresPorTipo(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(factores)
}

// CrearTipoEncuesta crea un tipo de encuesta (solo administradores)
// @Summary Crea un tipo de encuesta
// @Tags tipos-encuesta
// @Accept json
// @Produce json
// @Param body body entities.TipoEncuesta true "Tipo de encuesta"
// @Success 201 {object} entities.TipoEncuesta
// @Router /tipos-encuesta [post]
func (h *TipoEncuestaHandler) CrearTipoEncuesta(c *fiber.Ctx) error {
	var tipo entities.TipoEncuesta
	if err := c.BodyParser(&tipo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}
	if tipo.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "el nombre es obligatorio"})
	}

	tipo.ID = 0
	tipo.Activo = true
	if err := h.tipoRepo.CreateTipoEncuesta(&tipo); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tipo)
}

// ActualizarTipoEncuesta actualiza un tipo de encuesta (solo administradores)
// @Summary Actualiza un tipo de encuesta
// @Tags tipos-encuesta
// @Accept json
// @Produce json
// @Param id path int true "ID del tipo de encuesta"
// @Param body body entities.TipoEncuesta true "Campos a actualizar"
// @Success 200 {object} entities.TipoEncuesta
// @Failure 404 {object} map[string]interface{} "Tipo no encontrado"
// @Router /tipos-encuesta/{id} [put]
func (h *TipoEncuestaHandler) ActualizarTipoEncuesta(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	var tipo entities.TipoEncuesta
	if err := c.BodyParser(&tipo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	tipo.ID = uint(id)
	if err := h.tipoRepo.UpdateTipoEncuesta(&tipo); err != nil {
		return responderError(c, err)
	}

	actualizado, err := h.tipoRepo.GetTipoEncuesta(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(actualizado)
}
