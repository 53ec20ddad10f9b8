package usecases

import (
	"testing"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasificarEstadoHidrico(t *testing.T) {
	tests := []struct {
		humedad float64
		want    entities.SemaforoColor
	}{
		{humedad: 65, want: entities.SemaforoVerde},
		{humedad: 50, want: entities.SemaforoVerde},
		{humedad: 49.9, want: entities.SemaforoAmarillo},
		{humedad: 40, want: entities.SemaforoAmarillo},
		{humedad: 39.9, want: entities.SemaforoNaranja},
		{humedad: 30, want: entities.SemaforoNaranja},
		{humedad: 29.9, want: entities.SemaforoRojo},
		{humedad: 10, want: entities.SemaforoRojo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClasificarEstadoHidrico(tt.humedad), "humedad %.1f", tt.humedad)
	}
}

func TestClasificarRiesgoFungico(t *testing.T) {
	tests := []struct {
		name        string
		humedad     float64
		temperatura float64
		want        entities.SemaforoColor
	}{
		{name: "humedad alta con temperatura templada es crítico", humedad: 88, temperatura: 22, want: entities.SemaforoRojo},
		{name: "humedad alta con temperatura fría baja a naranja", humedad: 88, temperatura: 12, want: entities.SemaforoNaranja},
		{name: "humedad alta con temperatura caliente baja a naranja", humedad: 88, temperatura: 32, want: entities.SemaforoNaranja},
		{name: "humedad de 80 es naranja", humedad: 80, temperatura: 22, want: entities.SemaforoNaranja},
		{name: "humedad de 75 es amarillo", humedad: 75, temperatura: 22, want: entities.SemaforoAmarillo},
		{name: "humedad baja es verde", humedad: 55, temperatura: 22, want: entities.SemaforoVerde},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClasificarRiesgoFungico(tt.humedad, tt.temperatura))
		})
	}
}

func TestClasificarCargaSalina(t *testing.T) {
	tests := []struct {
		conductividad float64
		want          entities.SemaforoColor
	}{
		{conductividad: 0.4, want: entities.SemaforoVerde},
		{conductividad: 1.0, want: entities.SemaforoAmarillo},
		{conductividad: 1.9, want: entities.SemaforoAmarillo},
		{conductividad: 2.0, want: entities.SemaforoNaranja},
		{conductividad: 3.0, want: entities.SemaforoRojo},
		{conductividad: 4.5, want: entities.SemaforoRojo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClasificarCargaSalina(tt.conductividad), "conductividad %.1f", tt.conductividad)
	}
}

func TestClasificarTendencia(t *testing.T) {
	tests := []struct {
		name         string
		primera      []float64
		segunda      []float64
		mayorEsMejor bool
		want         entities.Tendencia
	}{
		{
			name: "mitad vacía es sin datos", primera: nil, segunda: []float64{1},
			want: entities.TendenciaSinDatos,
		},
		{
			name: "variación dentro del umbral es estable",
			primera: []float64{100}, segunda: []float64{104},
			mayorEsMejor: true, want: entities.TendenciaEstable,
		},
		{
			name: "el límite exacto del umbral sigue siendo estable",
			primera: []float64{100}, segunda: []float64{105},
			mayorEsMejor: true, want: entities.TendenciaEstable,
		},
		{
			name: "sube y mayor es mejor",
			primera: []float64{40}, segunda: []float64{50},
			mayorEsMejor: true, want: entities.TendenciaMejorando,
		},
		{
			name: "sube y mayor es peor",
			primera: []float64{40}, segunda: []float64{50},
			mayorEsMejor: false, want: entities.TendenciaEmpeorando,
		},
		{
			name: "baja y mayor es mejor",
			primera: []float64{50}, segunda: []float64{40},
			mayorEsMejor: true, want: entities.TendenciaEmpeorando,
		},
		{
			name: "baja y mayor es peor",
			primera: []float64{50}, segunda: []float64{40},
			mayorEsMejor: false, want: entities.TendenciaMejorando,
		},
		{
			name: "ambas mitades en cero es estable",
			primera: []float64{0}, segunda: []float64{0},
			mayorEsMejor: true, want: entities.TendenciaEstable,
		},
		{
			name: "desde cero hacia un valor cuenta como subida",
			primera: []float64{0}, segunda: []float64{2},
			mayorEsMejor: false, want: entities.TendenciaEmpeorando,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClasificarTendencia(tt.primera, tt.segunda, tt.mayorEsMejor))
		})
	}
}

func medicionesDeRango(inicio time.Time) []entities.Medicion {
	// Primera mitad húmeda en el suelo, segunda mitad seca; humedad ambiente
	// alta y estable; conductividad moderada
	return []entities.Medicion{
		{Metrica: entities.MetricaHumedadSuelo, FechaHora: inicio.Add(1 * time.Hour), Valor: 55},
		{Metrica: entities.MetricaHumedadSuelo, FechaHora: inicio.Add(40 * time.Hour), Valor: 35},
		{Metrica: entities.MetricaHumedadAmbiente, FechaHora: inicio.Add(2 * time.Hour), Valor: 86},
		{Metrica: entities.MetricaHumedadAmbiente, FechaHora: inicio.Add(41 * time.Hour), Valor: 87},
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: inicio.Add(3 * time.Hour), Valor: 23},
		{Metrica: entities.MetricaConductividadSuelo, FechaHora: inicio.Add(4 * time.Hour), Valor: 1.5},
		{Metrica: entities.MetricaConductividadSuelo, FechaHora: inicio.Add(42 * time.Hour), Valor: 1.5},
	}
}

func TestEvaluarIndicadores(t *testing.T) {
	inicio := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, 0, 2)

	indicadores := EvaluarIndicadores(medicionesDeRango(inicio), inicio, fin)
	require.Len(t, indicadores, 3)

	porNombre := map[string]entities.Indicador{}
	for _, ind := range indicadores {
		porNombre[ind.Nombre] = ind
	}

	hidrico := porNombre[IndicadorEstadoHidrico]
	assert.InDelta(t, 45.0, hidrico.Valor, 0.001)
	assert.Equal(t, entities.SemaforoAmarillo, hidrico.Semaforo)
	assert.Equal(t, entities.TendenciaEmpeorando, hidrico.Tendencia)

	fungico := porNombre[IndicadorRiesgoFungico]
	assert.InDelta(t, 86.5, fungico.Valor, 0.001)
	assert.Equal(t, entities.SemaforoRojo, fungico.Semaforo)
	assert.Equal(t, entities.TendenciaEstable, fungico.Tendencia)

	salina := porNombre[IndicadorCargaSalina]
	assert.InDelta(t, 1.5, salina.Valor, 0.001)
	assert.Equal(t, entities.SemaforoAmarillo, salina.Semaforo)
	assert.Equal(t, entities.TendenciaEstable, salina.Tendencia)
}

func TestEvaluarIndicadoresSinDatos(t *testing.T) {
	inicio := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, 0, 2)

	indicadores := EvaluarIndicadores(nil, inicio, fin)
	require.Len(t, indicadores, 3)
	for _, ind := range indicadores {
		assert.Equal(t, entities.SemaforoGris, ind.Semaforo, ind.Nombre)
		assert.Equal(t, entities.TendenciaSinDatos, ind.Tendencia, ind.Nombre)
		assert.Zero(t, ind.Valor, ind.Nombre)
	}
}

func TestGenerarAlertas(t *testing.T) {
	indicadores := []entities.Indicador{
		{Nombre: IndicadorEstadoHidrico, Valor: 55, Unidad: "%", Semaforo: entities.SemaforoVerde},
		{Nombre: IndicadorRiesgoFungico, Valor: 86.5, Unidad: "%", Semaforo: entities.SemaforoRojo},
		{Nombre: IndicadorCargaSalina, Valor: 1.5, Unidad: "dS/m", Semaforo: entities.SemaforoAmarillo},
	}

	alertas := GenerarAlertas(indicadores)
	require.Len(t, alertas, 2)

	assert.Equal(t, IndicadorRiesgoFungico, alertas[0].Tipo)
	assert.Equal(t, entities.SemaforoRojo, alertas[0].Nivel)
	assert.Contains(t, alertas[0].Condicion, "86.5")
	assert.NotEmpty(t, alertas[0].AccionRecomendada)

	assert.Equal(t, IndicadorCargaSalina, alertas[1].Tipo)
	assert.Equal(t, entities.SemaforoAmarillo, alertas[1].Nivel)
}

func TestGenerarAlertasSinNivelDeAlerta(t *testing.T) {
	indicadores := []entities.Indicador{
		{Nombre: IndicadorEstadoHidrico, Semaforo: entities.SemaforoVerde},
		{Nombre: IndicadorRiesgoFungico, Semaforo: entities.SemaforoGris},
	}
	assert.Empty(t, GenerarAlertas(indicadores))
}
