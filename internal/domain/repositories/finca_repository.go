package repositories

import (
	"errors"
	"fmt"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FincaRepository implementa métodos para acceso a datos de fincas
type FincaRepository struct {
	db *gorm.DB
}

// NewFincaRepository crea una nueva instancia de FincaRepository
func NewFincaRepository(db *gorm.DB) *FincaRepository {
	return &FincaRepository{db: db}
}

// GetFincas retorna las fincas con opción de filtros, búsqueda libre y paginación
func (r *FincaRepository) GetFincas(params map[string]interface{}) ([]entities.Finca, int64, error) {
	var fincas []entities.Finca
	var total int64

	query := r.db.Model(&entities.Finca{})

	if usuarioID, ok := params["usuario_id"].(uuid.UUID); ok && usuarioID != uuid.Nil {
		query = query.Where("usuario_id = ?", usuarioID)
	}

	if q, ok := params["q"].(string); ok && q != "" {
		patron := "%" + q + "%"
		query = query.Where("nombre ILIKE ? OR ubicacion ILIKE ? OR propietario ILIKE ?", patron, patron, patron)
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
		sortBy = "created_at"
	}
	if sortDirection == "" {
		sortDirection = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortDirection))

	offset := (page - 1) * limit
	query = query.Offset(offset).Limit(limit)

	if err := query.Find(&fincas).Error; err != nil {
		return nil, 0, fmt.Errorf("error al buscar fincas: %w", err)
	}

	return fincas, total, nil
}

// GetFinca retorna una finca por su id
func (r *FincaRepository) GetFinca(id uint) (*entities.Finca, error) {
	var finca entities.Finca

	if err := r.db.First(&finca, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("finca %d no existe", id)
		}
		return nil, fmt.Errorf("error al buscar finca: %w", err)
	}

	return &finca, nil
}

// CreateFinca crea una nueva finca
func (r *FincaRepository) CreateFinca(finca *entities.Finca) error {
	if err := r.db.Create(finca).Error; err != nil {
		return fmt.Errorf("error al crear finca: %w", err)
	}
	return nil
}

// UpdateFinca actualiza los campos de una finca existente
func (r *FincaRepository) UpdateFinca(finca *entities.Finca) error {
	if _, err := r.GetFinca(finca.ID); err != nil {
		return err
	}

	err := r.db.Model(&entities.Finca{}).Where("id = ?", finca.ID).
		Updates(map[string]interface{}{
			"nombre":      finca.Nombre,
			"ubicacion":   finca.Ubicacion,
			"latitud":     finca.Latitud,
			"longitud":    finca.Longitud,
			"propietario": finca.Propietario,
		}).Error
	if err != nil {
		return fmt.Errorf("error al actualizar finca: %w", err)
	}

	return nil
}

// DeleteFinca elimina una finca. El borrado se bloquea mientras existan
// encuestas que la referencien.
func (r *FincaRepository) DeleteFinca(id uint) error {
	if _, err := r.GetFinca(id); err != nil {
		return err
	}

	var dependientes int64
	if err := r.db.Model(&entities.Encuesta{}).Where("finca_id = ?", id).Count(&dependientes).Error; err != nil {
		return fmt.Errorf("error al verificar encuestas dependientes: %w", err)
	}
	if dependientes > 0 {
		return apperr.Conflicto("la finca %d tiene %d encuesta(s) asociada(s)", id, dependientes)
	}

	if err := r.db.Delete(&entities.Finca{}, id).Error; err != nil {
		return fmt.Errorf("error al eliminar finca: %w", err)
	}

	return nil
}
