package usecases

import (
	"fmt"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
)

// Umbral de estabilidad para la clasificación de tendencia: variaciones
// relativas dentro de ±5% entre las dos mitades del rango se consideran
// estables.
const umbralEstable = 0.05

// Nombres de los indicadores derivados
const (
	IndicadorEstadoHidrico = "estado_hidrico"
	IndicadorRiesgoFungico = "riesgo_fungico"
	IndicadorCargaSalina   = "carga_salina"
)

// ResultadoAlertas agrupa los indicadores evaluados de un rango y las alertas
// derivadas de ellos
type ResultadoAlertas struct {
	Rango       RangoFechas           `json:"rango"`
	Indicadores []entities.Indicador  `json:"indicadores"`
	Alertas     []entities.AlertaItem `json:"alertas"`
}

// AlertaUseCase deriva indicadores agronómicos y alertas de la serie de
// mediciones de un rango de fechas
type AlertaUseCase struct {
	medicionRepo *repositories.MedicionRepository
}

// NewAlertaUseCase crea una nueva instancia de AlertaUseCase
func NewAlertaUseCase(medicionRepo *repositories.MedicionRepository) *AlertaUseCase {
	return &AlertaUseCase{medicionRepo: medicionRepo}
}

// Evaluar calcula los tres indicadores del rango (estado hídrico, riesgo
// fúngico y carga salina) y genera las alertas de los que estén en nivel
// AMARILLO o peor
func (u *AlertaUseCase) Evaluar(rango RangoFechas) (*ResultadoAlertas, error) {
	inicio, fin, err := Limites(rango)
	if err != nil {
		return nil, err
	}

	mediciones, err := u.medicionRepo.GetMediciones(inicio, fin)
	if err != nil {
		return nil, err
	}

	indicadores := EvaluarIndicadores(mediciones, inicio, fin)
	return &ResultadoAlertas{
		Rango:       rango,
		Indicadores: indicadores,
		Alertas:     GenerarAlertas(indicadores),
	}, nil
}

// serieMetrica extrae los valores de una métrica partidos en las dos mitades
// temporales del rango
func serieMetrica(mediciones []entities.Medicion, metrica entities.MetricaSensor, inicio, fin time.Time) (todos, primera, segunda []float64) {
	mitad := inicio.Add(fin.Sub(inicio) / 2)
	for _, m := range mediciones {
		if m.Metrica != metrica {
			continue
		}
		todos = append(todos, m.Valor)
		if m.FechaHora.Before(mitad) {
			primera = append(primera, m.Valor)
		} else {
			segunda = append(segunda, m.Valor)
		}
	}
	return todos, primera, segunda
}

func promedio(valores []float64) float64 {
	if len(valores) == 0 {
		return 0
	}
	suma := 0.0
	for _, v := range valores {
		suma += v
	}
	return suma / float64(len(valores))
}

// EvaluarIndicadores deriva los tres indicadores agronómicos de las
// mediciones del rango. Un indicador sin datos queda en GRIS con tendencia
// sin_datos.
func EvaluarIndicadores(mediciones []entities.Medicion, inicio, fin time.Time) []entities.Indicador {
	humSuelo, humSueloA, humSueloB := serieMetrica(mediciones, entities.MetricaHumedadSuelo, inicio, fin)
	humAmb, humAmbA, humAmbB := serieMetrica(mediciones, entities.MetricaHumedadAmbiente, inicio, fin)
	tempAmb, _, _ := serieMetrica(mediciones, entities.MetricaTemperaturaAmbiente, inicio, fin)
	conduct, conductA, conductB := serieMetrica(mediciones, entities.MetricaConductividadSuelo, inicio, fin)

	hidrico := entities.Indicador{
		Nombre:    IndicadorEstadoHidrico,
		Unidad:    "%",
		Semaforo:  entities.SemaforoGris,
		Tendencia: entities.TendenciaSinDatos,
		Detalle:   "humedad del suelo promedio del rango",
	}
	if len(humSuelo) > 0 {
		hidrico.Valor = promedio(humSuelo)
		hidrico.Semaforo = ClasificarEstadoHidrico(hidrico.Valor)
		// Más humedad de suelo es mejor para el cafeto
		hidrico.Tendencia = ClasificarTendencia(humSueloA, humSueloB, true)
	}

	fungico := entities.Indicador{
		Nombre:    IndicadorRiesgoFungico,
		Unidad:    "%",
		Semaforo:  entities.SemaforoGris,
		Tendencia: entities.TendenciaSinDatos,
		Detalle:   "humedad ambiente promedio combinada con temperatura",
	}
	if len(humAmb) > 0 {
		fungico.Valor = promedio(humAmb)
		fungico.Semaforo = ClasificarRiesgoFungico(fungico.Valor, promedio(tempAmb))
		// Menos humedad ambiente reduce el riesgo fúngico
		fungico.Tendencia = ClasificarTendencia(humAmbA, humAmbB, false)
	}

	salina := entities.Indicador{
		Nombre:    IndicadorCargaSalina,
		Unidad:    "dS/m",
		Semaforo:  entities.SemaforoGris,
		Tendencia: entities.TendenciaSinDatos,
		Detalle:   "conductividad eléctrica del suelo promedio del rango",
	}
	if len(conduct) > 0 {
		salina.Valor = promedio(conduct)
		salina.Semaforo = ClasificarCargaSalina(salina.Valor)
		// Menos conductividad es mejor
		salina.Tendencia = ClasificarTendencia(conductA, conductB, false)
	}

	return []entities.Indicador{hidrico, fungico, salina}
}

// ClasificarEstadoHidrico clasifica la humedad del suelo promedio (%) según
// los umbrales agronómicos del cafeto
func ClasificarEstadoHidrico(humedadSuelo float64) entities.SemaforoColor {
	switch {
	case humedadSuelo >= 50:
		return entities.SemaforoVerde
	case humedadSuelo >= 40:
		return entities.SemaforoAmarillo
	case humedadSuelo >= 30:
		return entities.SemaforoNaranja
	}
	return entities.SemaforoRojo
}

// ClasificarRiesgoFungico clasifica el riesgo de enfermedades fúngicas según
// la humedad ambiente promedio (%) y la temperatura ambiente promedio (°C).
// Humedad alta sostenida con temperatura templada es la condición óptima para
// la roya del cafeto.
func ClasificarRiesgoFungico(humedadAmbiente, temperaturaAmbiente float64) entities.SemaforoColor {
	switch {
	case humedadAmbiente >= 85 && temperaturaAmbiente >= 18 && temperaturaAmbiente <= 28:
		return entities.SemaforoRojo
	case humedadAmbiente >= 80:
		return entities.SemaforoNaranja
	case humedadAmbiente >= 70:
		return entities.SemaforoAmarillo
	}
	return entities.SemaforoVerde
}

// ClasificarCargaSalina clasifica la conductividad eléctrica del suelo
// promedio (dS/m)
func ClasificarCargaSalina(conductividad float64) entities.SemaforoColor {
	switch {
	case conductividad < 1.0:
		return entities.SemaforoVerde
	case conductividad < 2.0:
		return entities.SemaforoAmarillo
	case conductividad < 3.0:
		return entities.SemaforoNaranja
	}
	return entities.SemaforoRojo
}

// ClasificarTendencia compara los promedios de las dos mitades del rango.
// Variaciones relativas dentro del umbral son estables; fuera de él, la
// dirección se interpreta según si un valor mayor es mejor o peor para el
// indicador.
func ClasificarTendencia(primera, segunda []float64, mayorEsMejor bool) entities.Tendencia {
	if len(primera) == 0 || len(segunda) == 0 {
		return entities.TendenciaSinDatos
	}

	m1 := promedio(primera)
	m2 := promedio(segunda)

	var deltaRelativo float64
	if m1 != 0 {
		deltaRelativo = (m2 - m1) / m1
	} else if m2 == 0 {
		deltaRelativo = 0
	} else {
		deltaRelativo = 1
	}

	if deltaRelativo >= -umbralEstable && deltaRelativo <= umbralEstable {
		return entities.TendenciaEstable
	}

	subiendo := deltaRelativo > 0
	if subiendo == mayorEsMejor {
		return entities.TendenciaMejorando
	}
	return entities.TendenciaEmpeorando
}

// condicionesAlerta describe cada indicador en nivel de alerta
var condicionesAlerta = map[string]struct {
	condicion string
	accion    string
}{
	IndicadorEstadoHidrico: {
		condicion: "humedad del suelo por debajo del rango óptimo",
		accion:    "programar riego suplementario y revisar la cobertura del suelo",
	},
	IndicadorRiesgoFungico: {
		condicion: "humedad ambiente alta sostenida, condición favorable para roya",
		accion:    "inspeccionar lotes en busca de focos e iniciar control preventivo",
	},
	IndicadorCargaSalina: {
		condicion: "conductividad del suelo elevada",
		accion:    "revisar la calidad del agua de riego y el plan de fertilización",
	},
}

// GenerarAlertas produce una alerta por cada indicador en nivel AMARILLO o
// peor. GRIS y VERDE no generan alertas.
func GenerarAlertas(indicadores []entities.Indicador) []entities.AlertaItem {
	alertas := []entities.AlertaItem{}
	for _, ind := range indicadores {
		if ind.Semaforo.Severidad() < entities.SemaforoAmarillo.Severidad() {
			continue
		}

		textos, ok := condicionesAlerta[ind.Nombre]
		if !ok {
			textos.condicion = "indicador fuera del rango óptimo"
			textos.accion = "revisar las mediciones del rango"
		}

		alertas = append(alertas, entities.AlertaItem{
			Tipo:              ind.Nombre,
			Nivel:             ind.Semaforo,
			Condicion:         fmt.Sprintf("%s (%.1f %s)", textos.condicion, ind.Valor, ind.Unidad),
			AccionRecomendada: textos.accion,
		})
	}
	return alertas
}
