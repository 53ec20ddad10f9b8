package entities

// SemaforoColor representa el nivel de severidad de un indicador, en orden
// ascendente. GRIS significa ausencia de datos, no severidad cero.
type SemaforoColor string

const (
	SemaforoGris     SemaforoColor = "GRIS"
	SemaforoVerde    SemaforoColor = "VERDE"
	SemaforoAmarillo SemaforoColor = "AMARILLO"
	SemaforoNaranja  SemaforoColor = "NARANJA"
	SemaforoRojo     SemaforoColor = "ROJO"
)

// Semaforos lista los colores en orden de severidad ascendente
func Semaforos() []SemaforoColor {
	return []SemaforoColor{SemaforoGris, SemaforoVerde, SemaforoAmarillo, SemaforoNaranja, SemaforoRojo}
}

// IsValid verifica que el color sea uno de los conocidos
func (s SemaforoColor) IsValid() bool {
	switch s {
	case SemaforoGris, SemaforoVerde, SemaforoAmarillo, SemaforoNaranja, SemaforoRojo:
		return true
	}
	return false
}

// Severidad retorna el rango numérico del color para comparaciones. GRIS y
// VERDE quedan por debajo del primer nivel que amerita alerta.
func (s SemaforoColor) Severidad() int {
	switch s {
	case SemaforoVerde:
		return 1
	case SemaforoAmarillo:
		return 2
	case SemaforoNaranja:
		return 3
	case SemaforoRojo:
		return 4
	}
	return 0
}

// Tendencia clasifica la evolución reciente de un indicador
type Tendencia string

const (
	TendenciaSinDatos   Tendencia = "sin_datos"
	TendenciaEstable    Tendencia = "estable"
	TendenciaMejorando  Tendencia = "mejorando"
	TendenciaEmpeorando Tendencia = "empeorando"
)

// Tendencias lista todas las tendencias conocidas
func Tendencias() []Tendencia {
	return []Tendencia{TendenciaSinDatos, TendenciaEstable, TendenciaMejorando, TendenciaEmpeorando}
}

// IsValid verifica que la tendencia sea una de las conocidas
func (t Tendencia) IsValid() bool {
	switch t {
	case TendenciaSinDatos, TendenciaEstable, TendenciaMejorando, TendenciaEmpeorando:
		return true
	}
	return false
}

// Indicador es un indicador agronómico derivado de las mediciones de un rango
// de fechas: estado hídrico, riesgo fúngico o carga salina.
type Indicador struct {
	Nombre    string        `json:"nombre"`
	Valor     float64       `json:"valor"`
	Unidad    string        `json:"unidad"`
	Semaforo  SemaforoColor `json:"semaforo"`
	Tendencia Tendencia     `json:"tendencia"`
	Detalle   string        `json:"detalle"`
}

// AlertaItem es una alerta derivada de un indicador en nivel AMARILLO o peor
type AlertaItem struct {
	Tipo              string        `json:"tipo"`
	Nivel             SemaforoColor `json:"nivel"`
	Condicion         string        `json:"condicion"`
	AccionRecomendada string        `json:"accion_recomendada"`
}
