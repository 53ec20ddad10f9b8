package repositories

import (
	"fmt"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/utils"
	"gorm.io/gorm"
)

// MedicionRepository implementa métodos para acceso a la serie temporal de
// mediciones ambientales
type MedicionRepository struct {
	db *gorm.DB
}

// NewMedicionRepository crea una nueva instancia de MedicionRepository
func NewMedicionRepository(db *gorm.DB) *MedicionRepository {
	return &MedicionRepository{db: db}
}

// GetMediciones retorna todas las mediciones dentro del rango [inicio, fin),
// ordenadas por fecha. La agregación por métrica y mes la hace el caso de uso.
func (r *MedicionRepository) GetMediciones(inicio, fin time.Time) ([]entities.Medicion, error) {
	mediciones := []entities.Medicion{}

	err := r.db.Where("fecha_hora >= ? AND fecha_hora < ?", inicio, fin).
		Order("fecha_hora asc").
		Find(&mediciones).Error
	if err != nil {
		return nil, fmt.Errorf("error al buscar mediciones: %w", err)
	}

	colombiaLocation := utils.GetColombiaLocation()
	for i := range mediciones {
		mediciones[i].FechaHora = mediciones[i].FechaHora.In(colombiaLocation)
	}

	return mediciones, nil
}

// GetMedicionesPorMetrica retorna las mediciones de una sola métrica dentro
// del rango [inicio, fin)
func (r *MedicionRepository) GetMedicionesPorMetrica(metrica entities.MetricaSensor, inicio, fin time.Time) ([]entities.Medicion, error) {
	mediciones := []entities.Medicion{}

	err := r.db.Where("metrica = ? AND fecha_hora >= ? AND fecha_hora < ?", metrica, inicio, fin).
		Order("fecha_hora asc").
		Find(&mediciones).Error
	if err != nil {
		return nil, fmt.Errorf("error al buscar mediciones de %s: %w", metrica, err)
	}

	return mediciones, nil
}

// CreateMediciones inserta un lote de mediciones (ingesta de sensores)
func (r *MedicionRepository) CreateMediciones(mediciones []entities.Medicion) error {
	if len(mediciones) == 0 {
		return nil
	}
	if err := r.db.Create(&mediciones).Error; err != nil {
		return fmt.Errorf("error al insertar mediciones: %w", err)
	}
	return nil
}
