package usecases

import (
	"testing"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factoresDePrueba() []entities.Factor {
	return []entities.Factor{
		{
			ID:     1,
			Nombre: "Sombra del lote",
			ValoresPosibles: []entities.ValorPosible{
				{ID: 11, FactorID: 1, Valor: "Plena exposición", Codigo: 1, Activo: true},
				{ID: 12, FactorID: 1, Valor: "Sombra parcial", Codigo: 2, Activo: true},
			},
		},
		{
			ID:     2,
			Nombre: "Estado de la floración",
			ValoresPosibles: []entities.ValorPosible{
				{ID: 21, FactorID: 2, Valor: "Sin floración", Codigo: 1, Activo: true},
				{ID: 22, FactorID: 2, Valor: "Floración plena", Codigo: 2, Activo: true},
			},
		},
		{
			ID:     3,
			Nombre: "Presencia de broca",
			ValoresPosibles: []entities.ValorPosible{
				{ID: 31, FactorID: 3, Valor: "Ausente", Codigo: 1, Activo: true},
			},
		},
	}
}

func TestInitializeRespuestas(t *testing.T) {
	factores := factoresDePrueba()
	respuestas := InitializeRespuestas(factores)

	require.Len(t, respuestas, len(factores))
	for i, r := range respuestas {
		assert.Equal(t, factores[i].ID, r.FactorID)
		assert.Zero(t, r.ValorPosibleID, "la respuesta semilla debe estar vacía")
	}

	assert.Empty(t, InitializeRespuestas(nil))
}

func TestValidateForSubmit(t *testing.T) {
	factores := factoresDePrueba()

	tests := []struct {
		name       string
		respuestas []entities.RespuestaFactor
		valido     bool
		invalidos  []int
	}{
		{
			name: "todas contestadas",
			respuestas: []entities.RespuestaFactor{
				{FactorID: 1, ValorPosibleID: 11},
				{FactorID: 2, ValorPosibleID: 22},
				{FactorID: 3, ValorPosibleID: 31},
			},
			valido:    true,
			invalidos: []int{},
		},
		{
			name: "una sin contestar",
			respuestas: []entities.RespuestaFactor{
				{FactorID: 1, ValorPosibleID: 11},
				{FactorID: 2},
				{FactorID: 3, ValorPosibleID: 31},
			},
			valido:    false,
			invalidos: []int{1},
		},
		{
			name: "referencia cruzada entre factores",
			respuestas: []entities.RespuestaFactor{
				{FactorID: 1, ValorPosibleID: 21},
				{FactorID: 2, ValorPosibleID: 22},
			},
			valido:    false,
			invalidos: []int{0},
		},
		{
			name: "factor inexistente",
			respuestas: []entities.RespuestaFactor{
				{FactorID: 99, ValorPosibleID: 11},
			},
			valido:    false,
			invalidos: []int{0},
		},
		{
			name:       "sin respuestas es válido",
			respuestas: []entities.RespuestaFactor{},
			valido:     true,
			invalidos:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resultado := ValidateForSubmit(factores, tt.respuestas)
			assert.Equal(t, tt.valido, resultado.Valido)
			assert.Equal(t, tt.invalidos, resultado.IndicesInvalidos)
		})
	}
}

func TestFiltrarRespuestas(t *testing.T) {
	factores := factoresDePrueba()

	// Dos de tres contestadas: el envío procede solo con las válidas
	respuestas := []entities.RespuestaFactor{
		{FactorID: 1, ValorPosibleID: 12},
		{FactorID: 2},
		{FactorID: 3, ValorPosibleID: 31},
	}

	validas := FiltrarRespuestas(factores, respuestas)
	require.Len(t, validas, 2)
	assert.Equal(t, uint(1), validas[0].FactorID)
	assert.Equal(t, uint(3), validas[1].FactorID)
}

func TestFiltrarRespuestasDescartaReferenciasCruzadas(t *testing.T) {
	factores := factoresDePrueba()

	respuestas := []entities.RespuestaFactor{
		{FactorID: 1, ValorPosibleID: 22}, // valor del factor 2
		{FactorID: 2, ValorPosibleID: 21},
	}

	validas := FiltrarRespuestas(factores, respuestas)
	require.Len(t, validas, 1)
	assert.Equal(t, uint(2), validas[0].FactorID)
}

func TestCanEdit(t *testing.T) {
	assert.True(t, CanEdit(&entities.Encuesta{Completada: false}))
	assert.False(t, CanEdit(&entities.Encuesta{Completada: true}))
}

func encuestaCompletada() *entities.Encuesta {
	fecha, _ := time.Parse("2006-01-02", "2024-03-10")
	return &entities.Encuesta{
		ID:              7,
		FechaAplicacion: fecha,
		TipoEncuestaID:  1,
		FincaID:         4,
		Observaciones:   "lote bajo sombra",
		Completada:      true,
		Respuestas: []entities.RespuestaFactor{
			{FactorID: 1, ValorPosibleID: 11},
			{FactorID: 2, ValorPosibleID: 22},
		},
	}
}

func TestValidarActualizacion(t *testing.T) {
	tests := []struct {
		name    string
		mutar   func(cambios *entities.Encuesta)
		wantErr bool
	}{
		{
			name:  "reabrir la encuesta es permitido",
			mutar: func(c *entities.Encuesta) { c.Completada = false },
		},
		{
			name:  "sin cambios es permitido",
			mutar: func(c *entities.Encuesta) {},
		},
		{
			name:    "cambiar la fecha se rechaza",
			mutar:   func(c *entities.Encuesta) { c.FechaAplicacion = c.FechaAplicacion.AddDate(0, 0, 1) },
			wantErr: true,
		},
		{
			name:    "cambiar el tipo se rechaza",
			mutar:   func(c *entities.Encuesta) { c.TipoEncuestaID = 2 },
			wantErr: true,
		},
		{
			name:    "cambiar la finca se rechaza",
			mutar:   func(c *entities.Encuesta) { c.FincaID = 9 },
			wantErr: true,
		},
		{
			name:    "cambiar las observaciones se rechaza",
			mutar:   func(c *entities.Encuesta) { c.Observaciones = "otro texto" },
			wantErr: true,
		},
		{
			name:    "cambiar una respuesta se rechaza",
			mutar:   func(c *entities.Encuesta) { c.Respuestas[0].ValorPosibleID = 12 },
			wantErr: true,
		},
		{
			name: "reabrir y cambiar a la vez también se rechaza",
			mutar: func(c *entities.Encuesta) {
				c.Completada = false
				c.Observaciones = "otro texto"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existente := encuestaCompletada()
			cambios := encuestaCompletada()
			tt.mutar(cambios)

			err := ValidarActualizacion(existente, cambios)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrConflicto)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidarActualizacionEncuestaAbierta(t *testing.T) {
	existente := encuestaCompletada()
	existente.Completada = false

	cambios := encuestaCompletada()
	cambios.Completada = false
	cambios.Observaciones = "texto nuevo"
	cambios.Respuestas[0].ValorPosibleID = 12

	// Una encuesta abierta admite cualquier cambio
	assert.NoError(t, ValidarActualizacion(existente, cambios))
}

func TestRespuestasIgualesIgnoraOrden(t *testing.T) {
	a := []entities.RespuestaFactor{
		{FactorID: 1, ValorPosibleID: 11},
		{FactorID: 2, ValorPosibleID: 22},
	}
	b := []entities.RespuestaFactor{
		{FactorID: 2, ValorPosibleID: 22},
		{FactorID: 1, ValorPosibleID: 11},
	}
	assert.True(t, respuestasIguales(a, b))

	b[0].ValorPosibleID = 21
	assert.False(t, respuestasIguales(a, b))
	assert.False(t, respuestasIguales(a, a[:1]))
}
