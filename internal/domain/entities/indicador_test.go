package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemaforoColorIsValid(t *testing.T) {
	for _, color := range Semaforos() {
		assert.True(t, color.IsValid(), "color %s", color)
	}
	assert.False(t, SemaforoColor("MORADO").IsValid())
	assert.False(t, SemaforoColor("").IsValid())
}

func TestSemaforoSeveridadEsAscendente(t *testing.T) {
	colores := Semaforos()
	for i := 1; i < len(colores); i++ {
		assert.Greater(t, colores[i].Severidad(), colores[i-1].Severidad(),
			"%s debe ser más severo que %s", colores[i], colores[i-1])
	}

	// Un color desconocido queda al nivel de GRIS
	assert.Equal(t, SemaforoGris.Severidad(), SemaforoColor("MORADO").Severidad())
}

func TestTendenciaIsValid(t *testing.T) {
	for _, tendencia := range Tendencias() {
		assert.True(t, tendencia.IsValid(), "tendencia %s", tendencia)
	}
	assert.False(t, Tendencia("zigzag").IsValid())
}

func TestMetricaSensorIsValid(t *testing.T) {
	for _, metrica := range Metricas() {
		assert.True(t, metrica.IsValid(), "métrica %s", metrica)
	}
	assert.False(t, MetricaSensor("presion_atmosferica").IsValid())
}

func TestRolUsuarioIsValid(t *testing.T) {
	assert.True(t, RolAdmin.IsValid())
	assert.True(t, RolUsuarioComun.IsValid())
	assert.False(t, RolUsuario("invitado").IsValid())
}
