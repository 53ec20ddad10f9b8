package usecases

import (
	"testing"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCargadorDescartaResultadosTardios(t *testing.T) {
	c := NewCargadorFactores(nil)

	// Dos selecciones rápidas de tipo: la primera carga queda obsoleta
	gen1 := c.Iniciar(1)
	gen2 := c.Iniciar(2)

	factoresTipo2 := []entities.Factor{{ID: 20, TipoEncuestaID: 2}}
	require.True(t, c.Completar(gen2, factoresTipo2))

	// La respuesta lenta del tipo anterior llega después y se descarta
	factoresTipo1 := []entities.Factor{{ID: 10, TipoEncuestaID: 1}}
	assert.False(t, c.Completar(gen1, factoresTipo1))

	assert.Equal(t, uint(2), c.TipoActual())
	assert.Equal(t, factoresTipo2, c.Actuales())
}

func TestCargadorAplicaLaGeneracionVigente(t *testing.T) {
	c := NewCargadorFactores(nil)

	gen := c.Iniciar(3)
	factores := []entities.Factor{{ID: 30, TipoEncuestaID: 3}}
	assert.True(t, c.Completar(gen, factores))
	assert.Equal(t, factores, c.Actuales())

	// Una generación ya aplicada no puede reaplicarse tras una nueva selección
	c.Iniciar(4)
	assert.False(t, c.Completar(gen, factores))
}

func TestCargadorCargaCompleta(t *testing.T) {
	llamadas := []uint{}
	c := NewCargadorFactores(func(tipoEncuestaID uint) ([]entities.Factor, error) {
		llamadas = append(llamadas, tipoEncuestaID)
		return []entities.Factor{{ID: tipoEncuestaID * 10, TipoEncuestaID: tipoEncuestaID}}, nil
	})

	factores, err := c.Cargar(5)
	require.NoError(t, err)
	require.Len(t, factores, 1)
	assert.Equal(t, uint(50), factores[0].ID)
	assert.Equal(t, []uint{5}, llamadas)
	assert.Equal(t, uint(5), c.TipoActual())
}
