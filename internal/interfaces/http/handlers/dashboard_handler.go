package handlers

import (
	"time"

	"github.com/cafeandino/encuestas-api/internal/application/usecases"
	"github.com/cafeandino/encuestas-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler maneja requisiciones del tablero de monitoreo ambiental
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
	resolutor        *usecases.ResolutorRango
}

// NewDashboardHandler crea una nueva instancia de DashboardHandler
func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase, resolutor *usecases.ResolutorRango) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		resolutor:        resolutor,
	}
}

// rangoDesdeQuery resuelve el rango de la petición: un token de rango
// predefinido, o start_date/end_date explícitos tratados como personalizado
func (h *DashboardHandler) rangoDesdeQuery(c *fiber.Ctx) (usecases.RangoFechas, error) {
	token := usecases.TokenRango(c.Query("rango", ""))
	if token != "" && token != usecases.RangoPersonalizado {
		return h.resolutor.Resolver(token, "", "")
	}
	return h.resolutor.Resolver(usecases.RangoPersonalizado, c.Query("start_date", ""), c.Query("end_date", ""))
}

// GetSeries retorna las series temporales del rango agrupadas por métrica
// @Summary Series temporales ambientales
// @Description Retorna los puntos {fecha_hora, valor} del rango agrupados por métrica: temperatura y humedad ambiente y de suelo, y conductividad del suelo
// @Tags monitoreo
// @Produce json
// @Param rango query string false "Token de rango (ultimas-24h, ultima-semana, ultimo-mes)"
// @Param start_date query string false "Fecha inicial (YYYY-MM-DD)"
// @Param end_date query string false "Fecha final (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Series por métrica"
// @Failure 400 {object} map[string]interface{} "Error de parámetros"
// @Router /data_tth [get]
func (h *DashboardHandler) GetSeries(c *fiber.Ctx) error {
	rango, err := h.rangoDesdeQuery(c)
	if err != nil {
		return responderError(c, err)
	}

	inicio, fin, err := usecases.Limites(rango)
	if err != nil {
		return responderError(c, err)
	}

	series, err := h.dashboardUseCase.ObtenerSeries(inicio, fin)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"rango":  rango,
		"series": series,
	})
}

// GetResumenMensual retorna los agregados por mes y los meses destacados
// @Summary Reporte mensual
// @Description Retorna agregados por mes del rango (por defecto los últimos doce meses) y tres meses destacados: el más caluroso, el más húmedo y el menos favorable
// @Tags monitoreo
// @Produce json
// @Param start_date query string false "Fecha inicial (YYYY-MM-DD)"
// @Param end_date query string false "Fecha final (YYYY-MM-DD)"
// @Success 200 {object} usecases.ReporteMensual
// @Failure 400 {object} map[string]interface{} "Error de parámetros"
// @Router /data_tth/monthly_summary [get]
func (h *DashboardHandler) GetResumenMensual(c *fiber.Ctx) error {
	var inicio, fin time.Time

	startStr := c.Query("start_date", "")
	endStr := c.Query("end_date", "")
	if startStr == "" && endStr == "" {
		// Sin rango explícito el reporte cubre los últimos doce meses
		loc := utils.GetColombiaLocation()
		fin = utils.TruncarADia(time.Now().In(loc)).AddDate(0, 0, 1)
		inicio = fin.AddDate(-1, 0, -1)
	} else {
		rango, err := h.resolutor.Resolver(usecases.RangoPersonalizado, startStr, endStr)
		if err != nil {
			return responderError(c, err)
		}
		inicio, fin, err = usecases.Limites(rango)
		if err != nil {
			return responderError(c, err)
		}
	}

	reporte, err := h.dashboardUseCase.ObtenerReporteMensual(inicio, fin)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reporte)
}
