package handlers

import (
	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/interfaces/http/middleware"
	"github.com/cafeandino/encuestas-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EncuestaHandler maneja requisiciones de encuestas
type EncuestaHandler struct {
	encuestaUseCase *usecases.EncuestaUseCase
}

// NewEncuestaHandler crea una nueva instancia de EncuestaHandler
func NewEncuestaHandler(encuestaUseCase *usecases.EncuestaUseCase) *EncuestaHandler {
	return &EncuestaHandler{encuestaUseCase: encuestaUseCase}
}

// filtrosEncuestas arma el mapa de filtros a partir de la query, omitiendo
// los parámetros ausentes
func (h *EncuestaHandler) filtrosEncuestas(c *fiber.Ctx) (map[string]interface{}, error) {
	page, limit := paginacion(c)

	params := map[string]interface{}{
		"page":           page,
		"limit":          limit,
		"sort_by":        c.Query("sort_by", ""),
		"sort_direction": c.Query("sort_direction", ""),
	}

	if tipoID := c.QueryInt("tipo_encuesta_id", 0); tipoID > 0 {
		params["tipo_encuesta_id"] = uint(tipoID)
	}
	if fincaID := c.QueryInt("finca_id", 0); fincaID > 0 {
		params["finca_id"] = uint(fincaID)
	}
	if usuarioStr := c.Query("usuario_id", ""); usuarioStr != "" {
		usuarioID, err := uuid.Parse(usuarioStr)
		if err != nil {
			return nil, err
		}
		params["usuario_id"] = usuarioID
	}
	if fechaInicioStr := c.Query("fecha_inicio", ""); fechaInicioStr != "" {
		fechaInicio, err := usecases.ParsearFecha(fechaInicioStr)
		if err != nil {
			return nil, err
		}
		params["fecha_inicio"] = fechaInicio
	}
	if fechaFinStr := c.Query("fecha_fin", ""); fechaFinStr != "" {
		fechaFin, err := usecases.ParsearFecha(fechaFinStr)
		if err != nil {
			return nil, err
		}
		params["fecha_fin"] = fechaFin
	}
	if completadaStr := c.Query("completada", ""); completadaStr != "" {
		params["completada"] = completadaStr == "true"
	}
	if q := c.Query("q", ""); q != "" {
		params["q"] = q
	}

	return params, nil
}

// GetEncuestas retorna las encuestas con filtros y paginación
// @Summary Lista encuestas
// @Description Retorna encuestas filtrables por tipo, finca, usuario, rango de fechas, completitud y texto libre
// @Tags encuestas
// @Produce json
// @Param tipo_encuesta_id query int false "ID del tipo de encuesta"
// @Param finca_id query int false "ID de la finca"
// @Param usuario_id query string false "ID del usuario creador"
// @Param fecha_inicio query string false "Fecha mínima de aplicación (YYYY-MM-DD)"
// @Param fecha_fin query string false "Fecha máxima de aplicación (YYYY-MM-DD)"
// @Param completada query bool false "Filtrar por completitud"
// @Param q query string false "Búsqueda libre sobre observaciones"
// @Param page query int false "Página actual" default(1)
// @Param limit query int false "Elementos por página" default(10)
// @Success 200 {object} map[string]interface{} "Lista de encuestas"
// @Failure 400 {object} map[string]interface{} "Error de parámetros"
// @Router /encuestas [get]
func (h *EncuestaHandler) GetEncuestas(c *fiber.Ctx) error {
	params, err := h.filtrosEncuestas(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetros de filtro inválidos: " + err.Error()})
	}

	encuestas, total, err := h.encuestaUseCase.GetEncuestas(params)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  encuestas,
		"total": total,
		"page":  params["page"],
		"limit": params["limit"],
	})
}

// ExportarEncuestas exporta las encuestas filtradas a CSV
// @Summary Exporta encuestas a CSV
// @Description Serializa las filas ya filtradas a CSV; conveniencia de exportación sin garantías de formato
// @Tags encuestas
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Router /encuestas/export [get]
func (h *EncuestaHandler) ExportarEncuestas(c *fiber.Ctx) error {
	params, err := h.filtrosEncuestas(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetros de filtro inválidos: " + err.Error()})
	}

	// La exportación no pagina: se exporta todo el filtro
	params["page"] = 1
	params["limit"] = 10000

	encuestas, _, err := h.encuestaUseCase.GetEncuestas(params)
	if err != nil {
		return responderError(c, err)
	}

	csvBytes, err := utils.EncuestasACSV(encuestas)
	if err != nil {
		return responderError(c, err)
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="encuestas.csv"`)
	return c.Send(csvBytes)
}

// GetEncuesta retorna una encuesta con sus respuestas
// @Summary Detalle de una encuesta
// @Tags encuestas
// @Produce json
// @Param id path int true "ID de la encuesta"
// @Success 200 {object} entities.Encuesta
// @Failure 404 {object} map[string]interface{} "Encuesta no encontrada"
// @Router /encuestas/{id} [get]
func (h *EncuestaHandler) GetEncuesta(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	encuesta, err := h.encuestaUseCase.GetEncuesta(uint(id))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(encuesta)
}

// CrearEncuesta crea una encuesta para el usuario autenticado
// @Summary Crea una encuesta
// @Description Crea una encuesta con sus respuestas. Las respuestas sin contestar o con valores de otro factor se omiten y se persiste solo el subconjunto válido.
// @Tags encuestas
// @Accept json
// @Produce json
// @Param body body entities.Encuesta true "Encuesta con respuestas anidadas"
// @Success 201 {object} entities.Encuesta
// @Failure 400 {object} map[string]interface{} "Error de validación"
// @Router /encuestas [post]
func (h *EncuestaHandler) CrearEncuesta(c *fiber.Ctx) error {
	var encuesta entities.Encuesta
	if err := c.BodyParser(&encuesta); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	usuarioID, ok := middleware.UsuarioActual(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "sesión no válida"})
	}

	encuesta.ID = 0
	encuesta.UsuarioID = usuarioID
	encuesta.Completada = false
	if err := h.encuestaUseCase.CrearEncuesta(&encuesta); err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(encuesta)
}

// ActualizarEncuesta actualiza una encuesta respetando el bloqueo por completitud
// @Summary Actualiza una encuesta
// @Description Mientras la encuesta esté completada solo la bandera puede cambiar; cualquier otro cambio responde 409 hasta reabrirla
// @Tags encuestas
// @Accept json
// @Produce json
// @Param id path int true "ID de la encuesta"
// @Param body body entities.Encuesta true "Campos a actualizar"
// @Success 200 {object} entities.Encuesta
// @Failure 403 {object} map[string]interface{} "Encuesta de otro usuario"
// @Failure 409 {object} map[string]interface{} "Encuesta completada"
// @Router /encuestas/{id} [put]
func (h *EncuestaHandler) ActualizarEncuesta(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "parámetro 'id' inválido"})
	}

	var cambios entities.Encuesta
	if err := c.BodyParser(&cambios); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo de petición inválido"})
	}

	usuarioID, _ := middleware.UsuarioActual(c)
	encuesta, err := h.encuestaUseCase.ActualizarEncuesta(uint(id), &cambios, usuarioID, middleware.EsAdmin(c))
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(encuesta)
}
