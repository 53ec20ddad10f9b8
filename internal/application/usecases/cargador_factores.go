package usecases

import (
	"sync"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
)

// CargadorFactores serializa las cargas de factores cuando el tipo de
// encuesta seleccionado cambia rápidamente. Cada carga lleva un número de
// generación monótono; el resultado de una carga cuya generación ya no es la
// vigente se descarta, de modo que una respuesta lenta para un tipo anterior
// nunca pise los factores del tipo actual.
type CargadorFactores struct {
	mu         sync.Mutex
	generacion uint64
	tipoActual uint
	factores   []entities.Factor
	cargar     func(tipoEncuestaID uint) ([]entities.Factor, error)
}

// NewCargadorFactores crea un cargador sobre la función de carga dada
func NewCargadorFactores(cargar func(tipoEncuestaID uint) ([]entities.Factor, error)) *CargadorFactores {
	return &CargadorFactores{cargar: cargar}
}

// Iniciar registra una carga para el tipo dado y retorna su generación. Toda
// llamada posterior invalida las generaciones anteriores.
func (c *CargadorFactores) Iniciar(tipoEncuestaID uint) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generacion++
	c.tipoActual = tipoEncuestaID
	return c.generacion
}

// Completar aplica el resultado de una carga si su generación sigue vigente.
// Retorna false cuando el resultado llegó tarde y fue descartado.
func (c *CargadorFactores) Completar(generacion uint64, factores []entities.Factor) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generacion != c.generacion {
		return false
	}
	c.factores = factores
	return true
}

// Cargar ejecuta una carga completa para el tipo dado: registra la
// generación, consulta y aplica el resultado solo si sigue vigente
func (c *CargadorFactores) Cargar(tipoEncuestaID uint) ([]entities.Factor, error) {
	generacion := c.Iniciar(tipoEncuestaID)

	factores, err := c.cargar(tipoEncuestaID)
	if err != nil {
		return nil, err
	}

	if !c.Completar(generacion, factores) {
		return c.Actuales(), nil
	}
	return factores, nil
}

// Actuales retorna los factores de la última carga aplicada
func (c *CargadorFactores) Actuales() []entities.Factor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.factores
}

// TipoActual retorna el tipo de encuesta de la carga vigente
func (c *CargadorFactores) TipoActual() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tipoActual
}
