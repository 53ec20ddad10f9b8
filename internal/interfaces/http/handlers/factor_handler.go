package handlers

import (
	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// FactorHandler maneja requisiciones de administración de factores
type FactorHandler struct {
	factorUseCase *usecases.FactorUseCase
}

// NewFactorHandler crea una nueva instancia de FactorHandler
func NewFactorHandler(factorUseCase *usecases.FactorUseCase) *FactorHandler {
	return &FactorHandler{factorUseCase: factorUseCase}
}

// GetFactor retorna un factor con todos sus valores (formulario de administración)
// @Summary Detalle de un factor
// @Tags factores
// @Produce json
// @Param id path int true "ID del factor"
// @Success 200 {object} entities.Factor
// @Failure 404 {object} map[string]interface{} "Factor no encontrado"
// @Router /factores/{id} [get]
func (h *FactorHandler) GetFactor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	factor, err := h.factorUseCase.GetFactor(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(factor)
}

// CrearFactor crea un factor con su lote de valores posibles
// @Summary Crea un factor
// @Description Crea un factor con sus valores posibles. Etiquetas vacías, códigos no positivos o duplicados se rechazan antes de cualquier escritura.
// @Tags factores
// @Accept json
// @Produce json
// @Param body body entities.Factor true "Factor con valores anidados"
// @Success 201 {object} entities.Factor
// @Failure 400 {object} map[string]interface{} "Error de validación"
// @Router /factores [post]
func (h *FactorHandler) CrearFactor(c *fiber.Ctx) error {
	var factor entities.Factor
	if err := c.BodyParser(&factor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	factor.ID = 0
	factor.Activo = true
	for i := range factor.ValoresPosibles {
		factor.ValoresPosibles[i].ID = 0
		factor.ValoresPosibles[i].Activo = true
	}

	if err := h.factorUseCase.CrearFactor(&factor); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(factor)
}

// ActualizarFactor actualiza un factor y su lote de valores
// @Summary Actualiza un factor
// @Description Actualiza el factor y su lote de valores: los valores con id se modifican, los nuevos se crean y los ausentes se desactivan. El último valor activo no puede eliminarse.
// @Tags factores
// @Accept json
// @Produce json
// @Param id path int true "ID del factor"
// @Param body body entities.Factor true "Factor con valores anidados"
// @Success 200 {object} entities.Factor
// @Failure 400 {object} map[string]interface{} "Error de validación"
// @Failure 404 {object} map[string]interface{} "Factor no encontrado"
// @Router /factores/{id} [put]
func (h *FactorHandler) ActualizarFactor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	var factor entities.Factor
	if err := c.BodyParser(&factor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	factor.ID = uint(id)
	if err := h.factorUseCase.ActualizarFactor(&factor); err != nil {
		return responderError(c, err)
	}

	actualizado, err := h.factorUseCase.GetFactor(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(actualizado)
}

// SiguienteCodigo sugiere el código para un valor nuevo del factor
// @Summary Sugerencia de código
// @Description Retorna max(códigos)+1 del factor, o 1 si no tiene valores. Es una sugerencia, no un invariante.
// @Tags factores
// @Produce json
// @Param id path int true "ID del factor"
// @Success 200 {object} map[string]interface{} "Código sugerido"
// @Router /factores/{id}/siguiente-codigo [get]
func (h *FactorHandler) SiguienteCodigo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	factor, err := h.factorUseCase.GetFactor(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"siguiente_codigo": h.factorUseCase.SiguienteCodigo(factor.ValoresPosibles),
	})
}
