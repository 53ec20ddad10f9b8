package usecases

import (
	"testing"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestClasificarSemaforoCubreElEnumeradoCompleto(t *testing.T) {
	vistos := map[EstiloSemaforo]bool{}
	for _, color := range entities.Semaforos() {
		color := color
		estilo := ClasificarSemaforo(&color)
		assert.NotEmpty(t, estilo.Fondo, "color %s sin fondo", color)
		assert.NotEmpty(t, estilo.Texto, "color %s sin texto", color)
		assert.NotEmpty(t, estilo.Icono, "color %s sin ícono", color)
		assert.False(t, vistos[estilo], "color %s repite el estilo de otro", color)
		vistos[estilo] = true
	}
}

func TestClasificarSemaforoNormalizaAGris(t *testing.T) {
	gris := ClasificarSemaforo(nil)
	assert.Equal(t, estilosSemaforo[entities.SemaforoGris], gris)

	desconocido := entities.SemaforoColor("MORADO")
	assert.Equal(t, gris, ClasificarSemaforo(&desconocido))
}

func TestDescribirTendencia(t *testing.T) {
	tests := []struct {
		name      string
		tendencia *entities.Tendencia
		want      string
	}{
		{name: "nula normaliza a sin datos", tendencia: nil, want: "Sin datos"},
		{name: "estable", tendencia: ptrTendencia(entities.TendenciaEstable), want: "Estable"},
		{name: "mejorando", tendencia: ptrTendencia(entities.TendenciaMejorando), want: "Mejorando"},
		{name: "empeorando", tendencia: ptrTendencia(entities.TendenciaEmpeorando), want: "Empeorando"},
		{name: "desconocida normaliza a sin datos", tendencia: ptrTendencia(entities.Tendencia("zigzag")), want: "Sin datos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribirTendencia(tt.tendencia))
		})
	}
}

func ptrTendencia(t entities.Tendencia) *entities.Tendencia {
	return &t
}
