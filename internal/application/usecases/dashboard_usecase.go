package usecases

import (
	"sort"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/cafeandino/encuestas-api/internal/utils"
)

// PuntoSerie es un punto de la serie temporal tal como lo consume el tablero
type PuntoSerie struct {
	FechaHora time.Time `json:"fecha_hora"`
	Valor     float64   `json:"valor"`
}

// ResumenMes son los agregados de un mes calendario
type ResumenMes struct {
	Mes                 string  `json:"mes"`
	PromTempAmbiente    float64 `json:"prom_temperatura_ambiente"`
	PromHumedadAmbiente float64 `json:"prom_humedad_ambiente"`
	PromTempSuelo       float64 `json:"prom_temperatura_suelo"`
	PromHumedadSuelo    float64 `json:"prom_humedad_suelo"`
	PromConductividad   float64 `json:"prom_conductividad_suelo"`
	TempMaxima          float64 `json:"temperatura_maxima"`
	HumedadMaxima       float64 `json:"humedad_maxima"`
	TotalMediciones     int     `json:"total_mediciones"`
}

// MesNotable es un mes destacado del reporte mensual
type MesNotable struct {
	Mes    string  `json:"mes"`
	Valor  float64 `json:"valor"`
	Motivo string  `json:"motivo"`
}

// ReporteMensual son los agregados por mes más los tres meses destacados
type ReporteMensual struct {
	Meses             []ResumenMes `json:"meses"`
	MesMasCaluroso    *MesNotable  `json:"mes_mas_caluroso,omitempty"`
	MesMasHumedo      *MesNotable  `json:"mes_mas_humedo,omitempty"`
	MesMenosFavorable *MesNotable  `json:"mes_menos_favorable,omitempty"`
	DiasSinDatos      []string     `json:"dias_sin_datos"`
}

// DashboardUseCase implementa los casos de uso de series temporales y
// reportes del tablero de monitoreo
type DashboardUseCase struct {
	medicionRepo *repositories.MedicionRepository
}

// NewDashboardUseCase crea una nueva instancia de DashboardUseCase
func NewDashboardUseCase(medicionRepo *repositories.MedicionRepository) *DashboardUseCase {
	return &DashboardUseCase{medicionRepo: medicionRepo}
}

// ObtenerSeries retorna los puntos del rango agrupados por métrica. Toda
// métrica conocida aparece en el resultado, con lista vacía si no tiene datos.
func (u *DashboardUseCase) ObtenerSeries(inicio, fin time.Time) (map[string][]PuntoSerie, error) {
	mediciones, err := u.medicionRepo.GetMediciones(inicio, fin)
	if err != nil {
		return nil, err
	}
	return AgruparPorMetrica(mediciones), nil
}

// AgruparPorMetrica agrupa mediciones ya ordenadas en series por métrica
func AgruparPorMetrica(mediciones []entities.Medicion) map[string][]PuntoSerie {
	series := make(map[string][]PuntoSerie, len(entities.Metricas()))
	for _, m := range entities.Metricas() {
		series[string(m)] = []PuntoSerie{}
	}

	for _, m := range mediciones {
		clave := string(m.Metrica)
		series[clave] = append(series[clave], PuntoSerie{FechaHora: m.FechaHora, Valor: m.Valor})
	}

	return series
}

// ObtenerReporteMensual retorna los agregados por mes del rango, los meses
// destacados y los días del rango sin ninguna medición
func (u *DashboardUseCase) ObtenerReporteMensual(inicio, fin time.Time) (*ReporteMensual, error) {
	mediciones, err := u.medicionRepo.GetMediciones(inicio, fin)
	if err != nil {
		return nil, err
	}

	reporte := ConstruirReporteMensual(mediciones)
	reporte.DiasSinDatos = diasSinMediciones(inicio, fin, mediciones)
	return reporte, nil
}

type acumuladoMes struct {
	suma   map[entities.MetricaSensor]float64
	conteo map[entities.MetricaSensor]int
	maximo map[entities.MetricaSensor]float64
	total  int
}

// ConstruirReporteMensual agrega las mediciones por mes calendario y
// selecciona los meses destacados: el más caluroso (mayor temperatura
// ambiente promedio), el más húmedo (mayor humedad ambiente promedio) y el
// menos favorable (mayor índice combinado de calor y humedad, condiciones que
// favorecen enfermedades fúngicas del cafeto)
func ConstruirReporteMensual(mediciones []entities.Medicion) *ReporteMensual {
	porMes := make(map[string]*acumuladoMes)

	for _, m := range mediciones {
		mes := m.FechaHora.Format("2006-01")
		acc, ok := porMes[mes]
		if !ok {
			acc = &acumuladoMes{
				suma:   make(map[entities.MetricaSensor]float64),
				conteo: make(map[entities.MetricaSensor]int),
				maximo: make(map[entities.MetricaSensor]float64),
			}
			porMes[mes] = acc
		}
		acc.suma[m.Metrica] += m.Valor
		acc.conteo[m.Metrica]++
		acc.total++
		if m.Valor > acc.maximo[m.Metrica] || acc.conteo[m.Metrica] == 1 {
			acc.maximo[m.Metrica] = m.Valor
		}
	}

	meses := make([]string, 0, len(porMes))
	for mes := range porMes {
		meses = append(meses, mes)
	}
	sort.Strings(meses)

	promedio := func(acc *acumuladoMes, metrica entities.MetricaSensor) float64 {
		if acc.conteo[metrica] == 0 {
			return 0
		}
		return acc.suma[metrica] / float64(acc.conteo[metrica])
	}

	reporte := &ReporteMensual{Meses: make([]ResumenMes, 0, len(meses)), DiasSinDatos: []string{}}

	for _, mes := range meses {
		acc := porMes[mes]
		resumen := ResumenMes{
			Mes:                 mes,
			PromTempAmbiente:    promedio(acc, entities.MetricaTemperaturaAmbiente),
			PromHumedadAmbiente: promedio(acc, entities.MetricaHumedadAmbiente),
			PromTempSuelo:       promedio(acc, entities.MetricaTemperaturaSuelo),
			PromHumedadSuelo:    promedio(acc, entities.MetricaHumedadSuelo),
			PromConductividad:   promedio(acc, entities.MetricaConductividadSuelo),
			TempMaxima:          acc.maximo[entities.MetricaTemperaturaAmbiente],
			HumedadMaxima:       acc.maximo[entities.MetricaHumedadAmbiente],
			TotalMediciones:     acc.total,
		}
		reporte.Meses = append(reporte.Meses, resumen)

		if reporte.MesMasCaluroso == nil || resumen.PromTempAmbiente > reporte.MesMasCaluroso.Valor {
			reporte.MesMasCaluroso = &MesNotable{
				Mes:    mes,
				Valor:  resumen.PromTempAmbiente,
				Motivo: "mayor temperatura ambiente promedio",
			}
		}
		if reporte.MesMasHumedo == nil || resumen.PromHumedadAmbiente > reporte.MesMasHumedo.Valor {
			reporte.MesMasHumedo = &MesNotable{
				Mes:    mes,
				Valor:  resumen.PromHumedadAmbiente,
				Motivo: "mayor humedad ambiente promedio",
			}
		}

		// Índice de desfavorabilidad: la humedad pesa más que el calor porque
		// es el disparador dominante de la roya y otros hongos del cafeto
		indice := 0.6*resumen.PromHumedadAmbiente + 0.4*resumen.PromTempAmbiente
		if reporte.MesMenosFavorable == nil || indice > reporte.MesMenosFavorable.Valor {
			reporte.MesMenosFavorable = &MesNotable{
				Mes:    mes,
				Valor:  indice,
				Motivo: "mayor índice combinado de calor y humedad",
			}
		}
	}

	return reporte
}

// diasSinMediciones retorna los días del rango [inicio, fin) sin ninguna medición
func diasSinMediciones(inicio, fin time.Time, mediciones []entities.Medicion) []string {
	conDatos := make(map[string]bool, len(mediciones))
	for _, m := range mediciones {
		conDatos[m.FechaHora.Format("2006-01-02")] = true
	}

	sinDatos := []string{}
	for _, dia := range utils.GenerarRangoFechas(inicio, fin.AddDate(0, 0, -1)) {
		if !conDatos[dia] {
			sinDatos = append(sinDatos, dia)
		}
	}
	return sinDatos
}
