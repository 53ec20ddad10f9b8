package repositories

import (
	"errors"
	"fmt"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"gorm.io/gorm"
)

// TipoEncuestaRepository implementa métodos para acceso a datos de tipos de encuesta
type TipoEncuestaRepository struct {
	db *gorm.DB
}

// NewTipoEncuestaRepository crea una nueva instancia de TipoEncuestaRepository
func NewTipoEncuestaRepository(db *gorm.DB) *TipoEncuestaRepository {
	return &TipoEncuestaRepository{db: db}
}

// GetTiposEncuesta retorna los tipos de encuesta, opcionalmente solo los activos
func (r *TipoEncuestaRepository) GetTiposEncuesta(soloActivos bool) ([]entities.TipoEncuesta, error) {
	var tipos []entities.TipoEncuesta

	query := r.db.Model(&entities.TipoEncuesta{}).Order("id asc")
	if soloActivos {
		query = query.Where("activo = ?", true)
	}

	if err := query.Find(&tipos).Error; err != nil {
		return nil, fmt.Errorf("error al buscar tipos de encuesta: %w", err)
	}

	return tipos, nil
}

// GetTipoEncuesta retorna un tipo de encuesta por su id
func (r *TipoEncuestaRepository) GetTipoEncuesta(id uint) (*entities.TipoEncuesta, error) {
	var tipo entities.TipoEncuesta

	if err := r.db.First(&tipo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("tipo de encuesta %d no existe", id)
		}
		return nil, fmt.Errorf("error al buscar tipo de encuesta: %w", err)
	}

	return &tipo, nil
}

// CreateTipoEncuesta crea un nuevo tipo de encuesta
func (r *TipoEncuestaRepository) CreateTipoEncuesta(tipo *entities.TipoEncuesta) error {
	if err := r.db.Create(tipo).Error; err != nil {
		return fmt.Errorf("error al crear tipo de encuesta: %w", err)
	}
	return nil
}

// UpdateTipoEncuesta actualiza los campos de un tipo de encuesta existente
func (r *TipoEncuestaRepository) UpdateTipoEncuesta(tipo *entities.TipoEncuesta) error {
	if _, err := r.GetTipoEncuesta(tipo.ID); err != nil {
		return err
	}

	if err := r.db.Model(&entities.TipoEncuesta{}).Where("id = ?", tipo.ID).
		Updates(map[string]interface{}{
			"nombre":      tipo.Nombre,
			"descripcion": tipo.Descripcion,
			"activo":      tipo.Activo,
		}).Error; err != nil {
		return fmt.Errorf("error al actualizar tipo de encuesta: %w", err)
	}

	return nil
}
