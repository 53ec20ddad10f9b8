package utils

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncuestasACSV(t *testing.T) {
	fecha := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	encuestas := []entities.Encuesta{
		{
			ID:              7,
			FechaAplicacion: fecha,
			TipoEncuesta:    entities.TipoEncuesta{Nombre: "Seguimiento fitosanitario"},
			Finca:           entities.Finca{Nombre: "La Esperanza"},
			Completada:      true,
			Observaciones:   "lote 3, con \"sombra\"",
			Respuestas: []entities.RespuestaFactor{
				{FactorID: 1, ValorPosibleID: 11},
				{FactorID: 2, ValorPosibleID: 22},
			},
		},
	}

	salida, err := EncuestasACSV(encuestas)
	require.NoError(t, err)

	filas, err := csv.NewReader(strings.NewReader(string(salida))).ReadAll()
	require.NoError(t, err)
	require.Len(t, filas, 2)

	assert.Equal(t, []string{"id", "fecha_aplicacion", "tipo_encuesta", "finca", "completada", "respuestas", "observaciones"}, filas[0])
	assert.Equal(t, []string{"7", "2024-03-10", "Seguimiento fitosanitario", "La Esperanza", "true", "2", "lote 3, con \"sombra\""}, filas[1])
}

func TestEncuestasACSVSinFilas(t *testing.T) {
	salida, err := EncuestasACSV(nil)
	require.NoError(t, err)

	filas, err := csv.NewReader(strings.NewReader(string(salida))).ReadAll()
	require.NoError(t, err)
	require.Len(t, filas, 1, "solo el encabezado")
}
