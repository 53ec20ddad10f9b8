package entities

import "time"

// MetricaSensor identifica la métrica ambiental de una medición
type MetricaSensor string

const (
	MetricaTemperaturaAmbiente MetricaSensor = "temperatura_ambiente"
	MetricaHumedadAmbiente     MetricaSensor = "humedad_ambiente"
	MetricaTemperaturaSuelo    MetricaSensor = "temperatura_suelo"
	MetricaHumedadSuelo        MetricaSensor = "humedad_suelo"
	MetricaConductividadSuelo  MetricaSensor = "conductividad_suelo"
)

// Metricas lista todas las métricas conocidas en orden de presentación
func Metricas() []MetricaSensor {
	return []MetricaSensor{
		MetricaTemperaturaAmbiente,
		MetricaHumedadAmbiente,
		MetricaTemperaturaSuelo,
		MetricaHumedadSuelo,
		MetricaConductividadSuelo,
	}
}

// IsValid verifica que la métrica sea una de las conocidas
func (m MetricaSensor) IsValid() bool {
	switch m {
	case MetricaTemperaturaAmbiente, MetricaHumedadAmbiente,
		MetricaTemperaturaSuelo, MetricaHumedadSuelo, MetricaConductividadSuelo:
		return true
	}
	return false
}

// Medicion representa un punto de la serie temporal de sensores de campo
type Medicion struct {
	ID        uint          `json:"id" gorm:"primaryKey;column:id"`
	Metrica   MetricaSensor `json:"metrica" gorm:"column:metrica;index:idx_mediciones_metrica_fecha"`
	FechaHora time.Time     `json:"fecha_hora" gorm:"column:fecha_hora;index:idx_mediciones_metrica_fecha"`
	Valor     float64       `json:"valor" gorm:"column:valor"`
}

// TableName define el nombre de la tabla
func (Medicion) TableName() string {
	return "mediciones"
}
