package repositories

import (
	"errors"
	"fmt"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"gorm.io/gorm"
)

// FactorRepository implementa métodos para acceso a datos de factores y sus
// valores posibles
type FactorRepository struct {
	db *gorm.DB
}

// NewFactorRepository crea una nueva instancia de FactorRepository
func NewFactorRepository(db *gorm.DB) *FactorRepository {
	return &FactorRepository{db: db}
}

// GetFactoresPorTipo retorna los factores activos de un tipo de encuesta con
// sus valores posibles activos, ordenados para presentación. Un tipo sin
// factores activos retorna lista vacía, no error; un tipo inexistente sí es
// error.
func (r *FactorRepository) GetFactoresPorTipo(tipoEncuestaID uint) ([]entities.Factor, error) {
	var tipo entities.TipoEncuesta
	if err := r.db.First(&tipo, tipoEncuestaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("tipo de encuesta %d no existe", tipoEncuestaID)
		}
		return nil, fmt.Errorf("error al verificar tipo de encuesta: %w", err)
	}

	factores := []entities.Factor{}
	err := r.db.Where("tipo_encuesta_id = ? AND activo = ?", tipoEncuestaID, true).
		Order("orden asc, id asc").
		Preload("ValoresPosibles", "activo = ?", true).
		Find(&factores).Error
	if err != nil {
		return nil, fmt.Errorf("error al buscar factores: %w", err)
	}

	return factores, nil
}

// GetFactor retorna un factor por su id con todos sus valores posibles,
// incluidos los inactivos (los necesita el formulario de administración)
func (r *FactorRepository) GetFactor(id uint) (*entities.Factor, error) {
	var factor entities.Factor

	err := r.db.Preload("ValoresPosibles").First(&factor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("factor %d no existe", id)
		}
		return nil, fmt.Errorf("error al buscar factor: %w", err)
	}

	return &factor, nil
}

// CreateFactor crea un factor junto con su lote de valores posibles
func (r *FactorRepository) CreateFactor(factor *entities.Factor) error {
	if err := r.db.Create(factor).Error; err != nil {
		return fmt.Errorf("error al crear factor: %w", err)
	}
	return nil
}

// UpdateFactor actualiza un factor y su lote anidado de valores posibles en
// una sola transacción. Los valores con id se actualizan, los valores nuevos
// (sin id) se crean y los valores existentes ausentes del lote se desactivan.
// Nunca se elimina físicamente un valor: las encuestas históricas lo
// referencian.
func (r *FactorRepository) UpdateFactor(factor *entities.Factor) error {
	existente, err := r.GetFactor(factor.ID)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.Factor{}).Where("id = ?", factor.ID).
			Updates(map[string]interface{}{
				"nombre":      factor.Nombre,
				"descripcion": factor.Descripcion,
				"categoria":   factor.Categoria,
				"orden":       factor.Orden,
				"activo":      factor.Activo,
			}).Error
		if err != nil {
			return fmt.Errorf("error al actualizar factor: %w", err)
		}

		enLote := make(map[uint]bool, len(factor.ValoresPosibles))
		for i := range factor.ValoresPosibles {
			v := &factor.ValoresPosibles[i]
			v.FactorID = factor.ID
			if v.ID != 0 {
				enLote[v.ID] = true
				err = tx.Model(&entities.ValorPosible{}).Where("id = ? AND factor_id = ?", v.ID, factor.ID).
					Updates(map[string]interface{}{
						"valor":       v.Valor,
						"codigo":      v.Codigo,
						"descripcion": v.Descripcion,
						"activo":      v.Activo,
					}).Error
			} else {
				err = tx.Create(v).Error
			}
			if err != nil {
				return fmt.Errorf("error al guardar valor posible: %w", err)
			}
		}

		for _, previo := range existente.ValoresPosibles {
			if !enLote[previo.ID] {
				err = tx.Model(&entities.ValorPosible{}).Where("id = ?", previo.ID).
					Update("activo", false).Error
				if err != nil {
					return fmt.Errorf("error al desactivar valor posible: %w", err)
				}
			}
		}

		return nil
	})
}
