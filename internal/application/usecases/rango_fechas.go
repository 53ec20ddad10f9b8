package usecases

import (
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/utils"
)

// TokenRango es el token de rango de fechas que selecciona el tablero
type TokenRango string

const (
	RangoUltimas24h    TokenRango = "ultimas-24h"
	RangoUltimaSemana  TokenRango = "ultima-semana"
	RangoUltimoMes     TokenRango = "ultimo-mes"
	RangoPersonalizado TokenRango = "personalizado"
)

const formatoFecha = "2006-01-02"

// RangoFechas es un rango resuelto a fechas calendario YYYY-MM-DD. Se usa de
// forma idéntica en el tablero de monitoreo, la página de alertas y los
// reportes, de modo que "últimas 24 horas" signifique lo mismo en todas.
type RangoFechas struct {
	FechaInicio string `json:"start_date"`
	FechaFin    string `json:"end_date"`
}

// ResolutorRango convierte tokens de rango en fechas concretas. El reloj es
// inyectable para que los rangos predefinidos sean verificables.
type ResolutorRango struct {
	ahora func() time.Time
}

// NewResolutorRango crea un resolutor sobre el reloj del sistema en horario
// de Colombia
func NewResolutorRango() *ResolutorRango {
	return &ResolutorRango{
		ahora: func() time.Time { return time.Now().In(utils.GetColombiaLocation()) },
	}
}

// NewResolutorRangoConReloj crea un resolutor con reloj explícito
func NewResolutorRangoConReloj(ahora func() time.Time) *ResolutorRango {
	return &ResolutorRango{ahora: ahora}
}

// Resolver convierte un token en un rango de fechas concreto. Para los tokens
// predefinidos el rango se recalcula desde "ahora" en cada llamada, nunca se
// cachea. Para personalizado ambos límites vienen del llamador; un límite
// vacío es error de validación y un fin anterior al inicio se ajusta hacia
// arriba hasta el inicio (nunca al revés).
//
// Solo se conserva la parte de fecha: ultimas-24h produce una ventana de 1 a
// 2 días calendario según la hora del día, imprecisión aceptada del producto.
func (r *ResolutorRango) Resolver(token TokenRango, inicio, fin string) (RangoFechas, error) {
	ahora := r.ahora()

	switch token {
	case RangoUltimas24h:
		return RangoFechas{
			FechaInicio: ahora.Add(-24 * time.Hour).Format(formatoFecha),
			FechaFin:    ahora.Format(formatoFecha),
		}, nil

	case RangoUltimaSemana:
		return RangoFechas{
			FechaInicio: ahora.AddDate(0, 0, -7).Format(formatoFecha),
			FechaFin:    ahora.Format(formatoFecha),
		}, nil

	case RangoUltimoMes:
		primerDia := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())
		return RangoFechas{
			FechaInicio: primerDia.Format(formatoFecha),
			FechaFin:    ahora.Format(formatoFecha),
		}, nil

	case RangoPersonalizado:
		if inicio == "" || fin == "" {
			return RangoFechas{}, apperr.Validacion("un rango personalizado requiere fecha de inicio y de fin")
		}
		fechaInicio, err := time.Parse(formatoFecha, inicio)
		if err != nil {
			return RangoFechas{}, apperr.Validacion("fecha de inicio inválida: %s", inicio)
		}
		fechaFin, err := time.Parse(formatoFecha, fin)
		if err != nil {
			return RangoFechas{}, apperr.Validacion("fecha de fin inválida: %s", fin)
		}
		if fechaFin.Before(fechaInicio) {
			fechaFin = fechaInicio
		}
		return RangoFechas{
			FechaInicio: fechaInicio.Format(formatoFecha),
			FechaFin:    fechaFin.Format(formatoFecha),
		}, nil
	}

	return RangoFechas{}, apperr.Validacion("token de rango desconocido: %s", token)
}

// Limites convierte un rango resuelto en instantes concretos [inicio, fin)
// para consultas sobre la serie temporal: inicio a las 00:00 del primer día y
// fin a las 00:00 del día siguiente al último, en horario de Colombia.
func Limites(rango RangoFechas) (time.Time, time.Time, error) {
	loc := utils.GetColombiaLocation()

	inicio, err := time.ParseInLocation(formatoFecha, rango.FechaInicio, loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validacion("fecha de inicio inválida: %s", rango.FechaInicio)
	}
	fin, err := time.ParseInLocation(formatoFecha, rango.FechaFin, loc)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validacion("fecha de fin inválida: %s", rango.FechaFin)
	}

	return inicio, fin.AddDate(0, 0, 1), nil
}

// ParsearFecha convierte una cadena de fecha a time.Time aceptando los
// formatos que envían los clientes del tablero
func ParsearFecha(fechaStr string) (time.Time, error) {
	if fechaStr == "" {
		return time.Time{}, nil
	}

	// Intentar formato ISO8601 con zona horaria
	t, err := time.Parse(time.RFC3339, fechaStr)
	if err == nil {
		return t, nil
	}

	// Intentar formato de fecha simple
	t, err = time.Parse(formatoFecha, fechaStr)
	if err == nil {
		// Definir hora al inicio del día (00:00:00)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}

	// Intentar formato de fecha y hora sin zona horaria
	t, err = time.Parse("2006-01-02T15:04:05", fechaStr)
	if err == nil {
		return t, nil
	}

	return time.Time{}, err
}
