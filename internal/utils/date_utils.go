package utils

import "time"

// GetColombiaLocation retorna la localización de Bogotá (UTC-5).
// Esta función debe usarse en todo el proyecto para obtener el huso horario
// estándar colombiano, garantizando consistencia en todas las operaciones
// relacionadas con fecha y hora.
func GetColombiaLocation() *time.Location {
	colombiaLocation, err := time.LoadLocation("America/Bogota")
	if err != nil {
		// Fallback a UTC-5 si no se puede cargar la localización
		colombiaLocation = time.FixedZone("COT", -5*60*60)
	}
	return colombiaLocation
}

// TruncarADia normaliza un instante al inicio del día calendario en su
// propia localización
func TruncarADia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GenerarRangoFechas genera un arreglo de cadenas de fecha "YYYY-MM-DD" para
// todas las fechas en el intervalo desde hasta (inclusive)
func GenerarRangoFechas(desde, hasta time.Time) []string {
	if desde.IsZero() || hasta.IsZero() || desde.After(hasta) {
		return []string{}
	}

	desde = TruncarADia(desde)
	hasta = TruncarADia(hasta)

	dias := int(hasta.Sub(desde).Hours()/24) + 1

	resultado := make([]string, dias)
	actual := desde
	for i := 0; i < dias; i++ {
		resultado[i] = actual.Format("2006-01-02")
		actual = actual.AddDate(0, 0, 1)
	}

	return resultado
}
