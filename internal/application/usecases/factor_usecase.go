package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/cafeandino/encuestas-api/internal/infrastructure/cache"
)

// Tiempo de vigencia del caché de factores por tipo. Los factores solo
// cambian por mutación administrativa, que además invalida la entrada.
const ttlFactores = 5 * time.Minute

// FactorUseCase implementa los casos de uso de administración y composición
// de factores con sus valores posibles
type FactorUseCase struct {
	factorRepo *repositories.FactorRepository
	cache      *cache.Cache
}

// NewFactorUseCase crea una nueva instancia de FactorUseCase
func NewFactorUseCase(factorRepo *repositories.FactorRepository, c *cache.Cache) *FactorUseCase {
	return &FactorUseCase{
		factorRepo: factorRepo,
		cache:      c,
	}
}

func claveFactores(tipoEncuestaID uint) string {
	return fmt.Sprintf("factores:tipo:%d", tipoEncuestaID)
}

// LoadFactoresPorTipo retorna los factores activos (con sus valores activos)
// que el formulario de encuesta debe presentar para un tipo dado. Un tipo sin
// factores retorna lista vacía y el formulario debe tolerarla.
func (u *FactorUseCase) LoadFactoresPorTipo(tipoEncuestaID uint) ([]entities.Factor, error) {
	clave := claveFactores(tipoEncuestaID)
	if cacheado, ok := u.cache.Get(clave); ok {
		if factores, ok := cacheado.([]entities.Factor); ok {
			return factores, nil
		}
	}

	factores, err := u.factorRepo.GetFactoresPorTipo(tipoEncuestaID)
	if err != nil {
		return nil, err
	}

	u.cache.Set(clave, factores, ttlFactores)
	return factores, nil
}

// GetFactor retorna un factor por id para el formulario de administración
func (u *FactorUseCase) GetFactor(id uint) (*entities.Factor, error) {
	return u.factorRepo.GetFactor(id)
}

// ValidarFactor valida un factor y su lote de valores antes de cualquier
// escritura: nombre obligatorio, al menos un valor activo, etiquetas no
// vacías, códigos positivos y sin códigos duplicados dentro del factor (dos
// valores con el mismo código corromperían la puntuación posterior).
func (u *FactorUseCase) ValidarFactor(factor *entities.Factor) error {
	if strings.TrimSpace(factor.Nombre) == "" {
		return apperr.Validacion("el nombre del factor es obligatorio")
	}
	if factor.TipoEncuestaID == 0 {
		return apperr.Validacion("el factor debe pertenecer a un tipo de encuesta")
	}

	activos := 0
	codigos := make(map[int]bool, len(factor.ValoresPosibles))
	for _, v := range factor.ValoresPosibles {
		if strings.TrimSpace(v.Valor) == "" {
			return apperr.Validacion("todo valor posible requiere una etiqueta")
		}
		if v.Codigo <= 0 {
			return apperr.Validacion("el código del valor %q debe ser un entero positivo", v.Valor)
		}
		if codigos[v.Codigo] {
			return apperr.Validacion("código %d duplicado dentro del factor", v.Codigo)
		}
		codigos[v.Codigo] = true
		if v.Activo {
			activos++
		}
	}

	// Un factor nunca queda sin valores: eliminar el último se rechaza y la
	// lista permanece intacta
	if activos == 0 {
		return apperr.Validacion("el factor debe conservar al menos un valor posible activo")
	}

	return nil
}

// SiguienteCodigo sugiere el código para un valor nuevo: max(códigos)+1, o 1
// si no hay valores. Es una sugerencia de conveniencia, no un invariante.
func (u *FactorUseCase) SiguienteCodigo(valores []entities.ValorPosible) int {
	max := 0
	for _, v := range valores {
		if v.Codigo > max {
			max = v.Codigo
		}
	}
	return max + 1
}

// CrearFactor valida y persiste un factor nuevo con sus valores
func (u *FactorUseCase) CrearFactor(factor *entities.Factor) error {
	if err := u.ValidarFactor(factor); err != nil {
		return err
	}
	if err := u.factorRepo.CreateFactor(factor); err != nil {
		return err
	}
	u.cache.Delete(claveFactores(factor.TipoEncuestaID))
	return nil
}

// ActualizarFactor valida y persiste los cambios de un factor y su lote de
// valores, invalidando el caché del tipo correspondiente
func (u *FactorUseCase) ActualizarFactor(factor *entities.Factor) error {
	if err := u.ValidarFactor(factor); err != nil {
		return err
	}
	if err := u.factorRepo.UpdateFactor(factor); err != nil {
		return err
	}
	u.cache.Delete(claveFactores(factor.TipoEncuestaID))
	return nil
}
