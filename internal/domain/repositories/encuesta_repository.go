package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EncuestaRepository implementa métodos para acceso a datos de encuestas
type EncuestaRepository struct {
	db *gorm.DB
}

// NewEncuestaRepository crea una nueva instancia de EncuestaRepository
func NewEncuestaRepository(db *gorm.DB) *EncuestaRepository {
	return &EncuestaRepository{db: db}
}

// GetEncuestas retorna las encuestas con opción de filtros y paginación.
// Filtros soportados: tipo_encuesta_id, finca_id, usuario_id, rango de fechas
// de aplicación, completada y búsqueda libre sobre observaciones.
func (r *EncuestaRepository) GetEncuestas(params map[string]interface{}) ([]entities.Encuesta, int64, error) {
	var encuestas []entities.Encuesta
	var total int64

	colombiaLocation := utils.GetColombiaLocation()

	query := r.db.Model(&entities.Encuesta{}).
		Preload("TipoEncuesta").
		Preload("Finca").
		Preload("Respuestas")

	if tipoID, ok := params["tipo_encuesta_id"].(uint); ok && tipoID > 0 {
		query = query.Where("tipo_encuesta_id = ?", tipoID)
	}

	if fincaID, ok := params["finca_id"].(uint); ok && fincaID > 0 {
		query = query.Where("finca_id = ?", fincaID)
	}

	if usuarioID, ok := params["usuario_id"].(uuid.UUID); ok && usuarioID != uuid.Nil {
		query = query.Where("usuario_id = ?", usuarioID)
	}

	if fechaInicio, ok := params["fecha_inicio"].(time.Time); ok && !fechaInicio.IsZero() {
		query = query.Where("fecha_aplicacion >= ?", fechaInicio)
	}

	if fechaFin, ok := params["fecha_fin"].(time.Time); ok && !fechaFin.IsZero() {
		query = query.Where("fecha_aplicacion <= ?", fechaFin)
	}

	if completada, ok := params["completada"].(bool); ok {
		query = query.Where("completada = ?", completada)
	}

	if q, ok := params["q"].(string); ok && q != "" {
		query = query.Where("observaciones ILIKE ?", "%"+q+"%")
	}

	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query.Count(&total)

	sortBy, _ := params["sort_by"].(string)
	sortDirection, _ := params["sort_direction"].(string)
	if sortBy == "" {
		sortBy = "fecha_aplicacion"
	}
	if sortDirection == "" {
		sortDirection = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortDirection))

	offset := (page - 1) * limit
	query = query.Offset(offset).Limit(limit)

	if err := query.Find(&encuestas).Error; err != nil {
		return nil, 0, fmt.Errorf("error al buscar encuestas: %w", err)
	}

	// Convertir marcas de tiempo al horario de Colombia
	for i := range encuestas {
		encuestas[i].CreatedAt = encuestas[i].CreatedAt.In(colombiaLocation)
		encuestas[i].UpdatedAt = encuestas[i].UpdatedAt.In(colombiaLocation)
	}

	return encuestas, total, nil
}

// GetEncuesta retorna una encuesta por su id con sus respuestas y relaciones
func (r *EncuestaRepository) GetEncuesta(id uint) (*entities.Encuesta, error) {
	var encuesta entities.Encuesta

	err := r.db.Preload("TipoEncuesta").Preload("Finca").Preload("Respuestas").
		First(&encuesta, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("encuesta %d no existe", id)
		}
		return nil, fmt.Errorf("error al buscar encuesta: %w", err)
	}

	return &encuesta, nil
}

// CreateEncuesta crea una encuesta junto con sus respuestas en una transacción
func (r *EncuestaRepository) CreateEncuesta(encuesta *entities.Encuesta) error {
	if err := r.db.Create(encuesta).Error; err != nil {
		return fmt.Errorf("error al crear encuesta: %w", err)
	}
	return nil
}

// UpdateEncuesta actualiza los campos de una encuesta y reemplaza sus
// respuestas en una transacción. La regla de bloqueo por completitud se
// decide en el caso de uso; aquí solo se persiste.
func (r *EncuestaRepository) UpdateEncuesta(encuesta *entities.Encuesta) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entities.Encuesta{}).Where("id = ?", encuesta.ID).
			Updates(map[string]interface{}{
				"fecha_aplicacion": encuesta.FechaAplicacion,
				"tipo_encuesta_id": encuesta.TipoEncuestaID,
				"finca_id":         encuesta.FincaID,
				"observaciones":    encuesta.Observaciones,
				"completada":       encuesta.Completada,
			}).Error
		if err != nil {
			return fmt.Errorf("error al actualizar encuesta: %w", err)
		}

		if err := tx.Where("encuesta_id = ?", encuesta.ID).Delete(&entities.RespuestaFactor{}).Error; err != nil {
			return fmt.Errorf("error al limpiar respuestas: %w", err)
		}

		for i := range encuesta.Respuestas {
			encuesta.Respuestas[i].ID = 0
			encuesta.Respuestas[i].EncuestaID = encuesta.ID
		}
		if len(encuesta.Respuestas) > 0 {
			if err := tx.Create(&encuesta.Respuestas).Error; err != nil {
				return fmt.Errorf("error al guardar respuestas: %w", err)
			}
		}

		return nil
	})
}

// UpdateCompletada cambia únicamente la bandera de completitud de una encuesta
func (r *EncuestaRepository) UpdateCompletada(id uint, completada bool) error {
	err := r.db.Model(&entities.Encuesta{}).Where("id = ?", id).
		Update("completada", completada).Error
	if err != nil {
		return fmt.Errorf("error al cambiar estado de encuesta: %w", err)
	}
	return nil
}
