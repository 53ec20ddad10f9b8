package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerarRangoFechas(t *testing.T) {
	desde := time.Date(2024, 2, 27, 15, 30, 0, 0, time.UTC)
	hasta := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

	dias := GenerarRangoFechas(desde, hasta)
	assert.Equal(t, []string{
		"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02",
	}, dias)
}

func TestGenerarRangoFechasUnSoloDia(t *testing.T) {
	dia := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2024-03-15"}, GenerarRangoFechas(dia, dia))
}

func TestGenerarRangoFechasInvalido(t *testing.T) {
	desde := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, GenerarRangoFechas(desde, desde.AddDate(0, 0, -1)))
	assert.Empty(t, GenerarRangoFechas(time.Time{}, desde))
}

func TestTruncarADia(t *testing.T) {
	loc := GetColombiaLocation()
	instante := time.Date(2024, 3, 15, 18, 45, 30, 0, loc)

	truncado := TruncarADia(instante)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), truncado)
	assert.Equal(t, loc, truncado.Location())
}
