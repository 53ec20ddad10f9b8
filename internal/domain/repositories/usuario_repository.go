package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository implementa métodos para acceso a datos de usuarios
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository crea una nueva instancia de UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

// GetPorID retorna un usuario por su id
func (r *UsuarioRepository) GetPorID(id uuid.UUID) (*entities.Usuario, error) {
	var usuario entities.Usuario

	if err := r.db.First(&usuario, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("usuario %s no existe", id)
		}
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}

	return &usuario, nil
}

// GetPorEmail retorna un usuario por su correo, normalizado a minúsculas
func (r *UsuarioRepository) GetPorEmail(email string) (*entities.Usuario, error) {
	var usuario entities.Usuario

	err := r.db.First(&usuario, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NoEncontrado("usuario con email %s no existe", email)
		}
		return nil, fmt.Errorf("error al buscar usuario: %w", err)
	}

	return &usuario, nil
}

// CreateUsuario crea un nuevo usuario. El correo debe ser único.
func (r *UsuarioRepository) CreateUsuario(usuario *entities.Usuario) error {
	usuario.Email = strings.ToLower(usuario.Email)

	var existentes int64
	if err := r.db.Model(&entities.Usuario{}).Where("email = ?", usuario.Email).Count(&existentes).Error; err != nil {
		return fmt.Errorf("error al verificar email: %w", err)
	}
	if existentes > 0 {
		return apperr.Conflicto("el email %s ya está registrado", usuario.Email)
	}

	if err := r.db.Create(usuario).Error; err != nil {
		return fmt.Errorf("error al crear usuario: %w", err)
	}

	return nil
}
