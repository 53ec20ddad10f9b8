package usecases

import (
	"testing"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgruparPorMetrica(t *testing.T) {
	base := time.Date(2024, 3, 14, 6, 0, 0, 0, time.UTC)
	mediciones := []entities.Medicion{
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: base, Valor: 21},
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: base.Add(time.Hour), Valor: 23},
		{Metrica: entities.MetricaHumedadSuelo, FechaHora: base, Valor: 48},
	}

	series := AgruparPorMetrica(mediciones)

	// Toda métrica conocida aparece, con lista vacía si no tiene datos
	require.Len(t, series, len(entities.Metricas()))
	for _, m := range entities.Metricas() {
		assert.NotNil(t, series[string(m)], "métrica %s ausente", m)
	}

	temp := series[string(entities.MetricaTemperaturaAmbiente)]
	require.Len(t, temp, 2)
	assert.Equal(t, 21.0, temp[0].Valor)
	assert.Equal(t, 23.0, temp[1].Valor)

	assert.Len(t, series[string(entities.MetricaHumedadSuelo)], 1)
	assert.Empty(t, series[string(entities.MetricaConductividadSuelo)])
}

func medicionesDeDosMeses() []entities.Medicion {
	enero := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	febrero := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	return []entities.Medicion{
		// Enero: templado y muy húmedo
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: enero, Valor: 20},
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: enero.Add(time.Hour), Valor: 22},
		{Metrica: entities.MetricaHumedadAmbiente, FechaHora: enero, Valor: 90},
		// Febrero: más caluroso y menos húmedo
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: febrero, Valor: 26},
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: febrero.Add(time.Hour), Valor: 30},
		{Metrica: entities.MetricaHumedadAmbiente, FechaHora: febrero, Valor: 60},
		{Metrica: entities.MetricaHumedadSuelo, FechaHora: febrero, Valor: 42},
	}
}

func TestConstruirReporteMensual(t *testing.T) {
	reporte := ConstruirReporteMensual(medicionesDeDosMeses())

	require.Len(t, reporte.Meses, 2)
	assert.Equal(t, "2024-01", reporte.Meses[0].Mes)
	assert.Equal(t, "2024-02", reporte.Meses[1].Mes)

	enero := reporte.Meses[0]
	assert.InDelta(t, 21.0, enero.PromTempAmbiente, 0.001)
	assert.InDelta(t, 90.0, enero.PromHumedadAmbiente, 0.001)
	assert.Equal(t, 22.0, enero.TempMaxima)
	assert.Equal(t, 3, enero.TotalMediciones)

	febrero := reporte.Meses[1]
	assert.InDelta(t, 28.0, febrero.PromTempAmbiente, 0.001)
	assert.InDelta(t, 42.0, febrero.PromHumedadSuelo, 0.001)
	assert.Equal(t, 30.0, febrero.TempMaxima)
	assert.Equal(t, 4, febrero.TotalMediciones)
}

func TestMesesNotables(t *testing.T) {
	reporte := ConstruirReporteMensual(medicionesDeDosMeses())

	require.NotNil(t, reporte.MesMasCaluroso)
	assert.Equal(t, "2024-02", reporte.MesMasCaluroso.Mes)
	assert.InDelta(t, 28.0, reporte.MesMasCaluroso.Valor, 0.001)

	require.NotNil(t, reporte.MesMasHumedo)
	assert.Equal(t, "2024-01", reporte.MesMasHumedo.Mes)
	assert.InDelta(t, 90.0, reporte.MesMasHumedo.Valor, 0.001)

	// Enero: 0.6*90 + 0.4*21 = 62.4; Febrero: 0.6*60 + 0.4*28 = 47.2
	require.NotNil(t, reporte.MesMenosFavorable)
	assert.Equal(t, "2024-01", reporte.MesMenosFavorable.Mes)
	assert.InDelta(t, 62.4, reporte.MesMenosFavorable.Valor, 0.001)
}

func TestConstruirReporteMensualSinMediciones(t *testing.T) {
	reporte := ConstruirReporteMensual(nil)
	assert.Empty(t, reporte.Meses)
	assert.Nil(t, reporte.MesMasCaluroso)
	assert.Nil(t, reporte.MesMasHumedo)
	assert.Nil(t, reporte.MesMenosFavorable)
}

func TestDiasSinMediciones(t *testing.T) {
	inicio := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, 0, 4) // [10, 14)

	mediciones := []entities.Medicion{
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: inicio.Add(6 * time.Hour), Valor: 21},
		{Metrica: entities.MetricaTemperaturaAmbiente, FechaHora: inicio.AddDate(0, 0, 2).Add(6 * time.Hour), Valor: 22},
	}

	sinDatos := diasSinMediciones(inicio, fin, mediciones)
	assert.Equal(t, []string{"2024-03-11", "2024-03-13"}, sinDatos)
}
