package handlers

import (
	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// FincaHandler maneja requisiciones de fincas
type FincaHandler struct {
	fincaUseCase *usecases.FincaUseCase
}

// NewFincaHandler crea una nueva instancia de FincaHandler
func NewFincaHandler(fincaUseCase *usecases.FincaUseCase) *FincaHandler {
	return &FincaHandler{fincaUseCase: fincaUseCase}
}

// GetFincas retorna las fincas del usuario con filtros y paginación
// @Summary Lista fincas
// @Description Retorna las fincas del usuario autenticado (todas para un administrador con todos=true), con búsqueda libre y paginación
// @Tags fincas
// @Produce json
// @Param q query string false "Búsqueda libre sobre nombre, ubicación y propietario"
// @Param todos query bool false "Listar fincas de todos los usuarios (solo admin)" default(false)
// @Param page query int false "Página actual" default(1)
// @Param limit query int false "Elementos por página" default(10)
// @Success 200 {object} map[string]interface{} "Lista de fincas"
// @Router /fincas [get]
func (h *FincaHandler) GetFincas(c *fiber.Ctx) error {
	page, limit := paginacion(c)

	params := map[string]interface{}{
		"page":           page,
		"limit":          limit,
		"sort_by":        c.Query("sort_by", ""),
		"sort_direction": c.Query("sort_direction", ""),
	}

	if q := c.Query("q", ""); q != "" {
		params["q"] = q
	}

	// Solo un administrador puede listar fincas ajenas
	if !(middleware.EsAdmin(c) && c.Query("todos", "false") == "true") {
		if id, ok := middleware.UsuarioActual(c); ok {
			params["usuario_id"] = id
		}
	}

	fincas, total, err := h.fincaUseCase.GetFincas(params)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  fincas,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetFinca retorna una finca por id
// @Summary Detalle de una finca
// @Tags fincas
// @Produce json
// @Param id path int true "ID de la finca"
// @Success 200 {object} entities.Finca
// @Failure 404 {object} map[string]interface{} "Finca no encontrada"
// @Router /fincas/{id} [get]
func (h *FincaHandler) GetFinca(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	finca, err := h.fincaUseCase.GetFinca(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(finca)
}

// CrearFinca crea una finca para el usuario autenticado
// @Summary Crea una finca
// @Description Crea una finca propia. Las coordenadas son opcionales e independientes, validadas a [-90,90] y [-180,180].
// @Tags fincas
// @Accept json
// @Produce json
// @Param body body entities.Finca true "Finca"
// @Success 201 {object} entities.Finca
// @Failure 400 {object} map[string]interface{} "Error de validación"
// @Router /fincas [post]
func (h *FincaHandler) CrearFinca(c *fiber.Ctx) error {
	var finca entities.Finca
	if err := c.BodyParser(&finca); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	usuarioID, ok := middleware.UsuarioActual(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sesión no válida"})
	}

	finca.ID = 0
	if err := h.fincaUseCase.CrearFinca(&finca, usuarioID); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(finca)
}

// ActualizarFinca actualiza una finca del usuario
// @Summary Actualiza una finca
// @Tags fincas
// @Accept json
// @Produce json
// @Param id path int true "ID de la finca"
// @Param body body entities.Finca true "Campos a actualizar"
// @Success 200 {object} entities.Finca
// @Failure 403 {object} map[string]interface{} "Finca de otro usuario"
// @Failure 404 {object} map[string]interface{} "Finca no encontrada"
// @Router /fincas/{id} [put]
func (h *FincaHandler) ActualizarFinca(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	var cambios entities.Finca
	if err := c.BodyParser(&cambios); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	usuarioID, _ := middleware.UsuarioActual(c)
	finca, err := h.fincaUseCase.ActualizarFinca(uint(id), &cambios, usuarioID, middleware.EsAdmin(c))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(finca)
}

// EliminarFinca elimina una finca sin encuestas asociadas
// @Summary Elimina una finca
// @Description El borrado se bloquea con 409 mientras existan encuestas que referencien la finca
// @Tags fincas
// @Produce json
// @Param id path int true "ID de la finca"
// @Success 200 {object} map[string]interface{} "Finca eliminada"
// @Failure 409 {object} map[string]interface{} "Finca con encuestas asociadas"
// @Router /fincas/{id} [delete]
func (h *FincaHandler) EliminarFinca(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	usuarioID, _ := middleware.UsuarioActual(c)
	if err := h.fincaUseCase.EliminarFinca(uint(id), usuarioID, middleware.EsAdmin(c)); err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "finca eliminada"})
}
