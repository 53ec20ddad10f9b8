package usecases

import "github.com/cafeandino/encuestas-api/internal/domain/entities"

// EstiloSemaforo es el par de colores e ícono fijo de un color de semáforo
type EstiloSemaforo struct {
	Fondo string `json:"bg"`
	Texto string `json:"text"`
	Icono string `json:"icon"`
}

// Tabla de presentación de semáforos. Cubre el enumerado completo: todo color
// conocido resuelve a un visual definido, sin rama de respaldo indefinida.
var estilosSemaforo = map[entities.SemaforoColor]EstiloSemaforo{
	entities.SemaforoGris:     {Fondo: "#eceff1", Texto: "#455a64", Icono: "help"},
	entities.SemaforoVerde:    {Fondo: "#e8f5e9", Texto: "#1b5e20", Icono: "check_circle"},
	entities.SemaforoAmarillo: {Fondo: "#fffde7", Texto: "#f57f17", Icono: "warning"},
	entities.SemaforoNaranja:  {Fondo: "#fff3e0", Texto: "#e65100", Icono: "report_problem"},
	entities.SemaforoRojo:     {Fondo: "#ffebee", Texto: "#b71c1c", Icono: "error"},
}

// Etiquetas humanas de cada tendencia
var etiquetasTendencia = map[entities.Tendencia]string{
	entities.TendenciaSinDatos:   "Sin datos",
	entities.TendenciaEstable:    "Estable",
	entities.TendenciaMejorando:  "Mejorando",
	entities.TendenciaEmpeorando: "Empeorando",
}

// ClasificarSemaforo retorna el estilo visual de un color de semáforo. Un
// valor nulo o desconocido se normaliza a GRIS antes de la búsqueda.
func ClasificarSemaforo(semaforo *entities.SemaforoColor) EstiloSemaforo {
	color := entities.SemaforoGris
	if semaforo != nil && semaforo.IsValid() {
		color = *semaforo
	}
	return estilosSemaforo[color]
}

// DescribirTendencia retorna la etiqueta humana de una tendencia. Un valor
// nulo o desconocido se normaliza a sin_datos.
func DescribirTendencia(tendencia *entities.Tendencia) string {
	t := entities.TendenciaSinDatos
	if tendencia != nil && tendencia.IsValid() {
		t = *tendencia
	}
	return etiquetasTendencia[t]
}
