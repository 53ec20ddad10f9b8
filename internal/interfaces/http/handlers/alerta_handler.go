package handlers

import (
	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// AlertaHandler maneja requisiciones de indicadores y alertas agronómicas
type AlertaHandler struct {
	alertaUseCase *usecases.AlertaUseCase
	resolutor     *usecases.ResolutorRango
}

// NewAlertaHandler crea una nueva instancia de AlertaHandler
func NewAlertaHandler(alertaUseCase *usecases.AlertaUseCase, resolutor *usecases.ResolutorRango) *AlertaHandler {
	return &AlertaHandler{
		alertaUseCase: alertaUseCase,
		resolutor:     resolutor,
	}
}

// GetAlertas evalúa los indicadores del rango y retorna las alertas derivadas
// @Summary Indicadores y alertas del rango
// @Description Evalúa estado hídrico, riesgo fúngico y carga salina sobre las mediciones del rango, con semáforo y tendencia por indicador y una alerta por cada indicador en AMARILLO o peor
// @Tags alertas
// @Produce json
// @Param rango query string false "Token de rango (ultimas-24h, ultima-semana, ultimo-mes, personalizado)" default(ultima-semana)
// @Param start_date query string false "Fecha inicial para rango personalizado (YYYY-MM-DD)"
// @Param end_date query string false "Fecha final para rango personalizado (YYYY-MM-DD)"
// @Success 200 {object} usecases.ResultadoAlertas
// @Failure 400 {object} map[string]interface{} "Error de parámetros"
// @Router /alertas [get]
func (h *AlertaHandler) GetAlertas(c *fiber.Ctx) error {
	token := usecases.TokenRango(c.Query("rango", ""))
	if token == "" {
		if c.Query("start_date", "") != "" || c.Query("end_date", "") != "" {
			token = usecases.RangoPersonalizado
		} else {
			token = usecases.RangoUltimaSemana
		}
	}

	rango, err := h.resolutor.Resolver(token, c.Query("start_date", ""), c.Query("end_date", ""))
	if err != nil {
		return responderError(c, err)
	}

	resultado, err := h.alertaUseCase.Evaluar(rango)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(resultado)
}

// GetEstilos retorna las tablas de presentación de semáforos y tendencias
// @Summary Tablas de presentación
// @Description Retorna el visual fijo de cada color de semáforo y la etiqueta de cada tendencia, para que todos los clientes rendericen igual
// @Tags alertas
// @Produce json
// @Success 200 {object} map[string]interface{} "Estilos y etiquetas"
// @Router /alertas/estilos [get]
func (h *AlertaHandler) GetEstilos(c *fiber.Ctx) error {
	estilos := make(map[string]usecases.EstiloSemaforo, len(entities.Semaforos()))
	for _, s := range entities.Semaforos() {
		color := s
		estilos[string(s)] = usecases.ClasificarSemaforo(&color)
	}

	etiquetas := make(map[string]string, len(entities.Tendencias()))
	for _, t := range entities.Tendencias() {
		tendencia := t
		etiquetas[string(t)] = usecases.DescribirTendencia(&tendencia)
	}

	return c.JSON(fiber.Map{
		"semaforos":  estilos,
		"tendencias": etiquetas,
	})
}
