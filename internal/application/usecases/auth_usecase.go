package usecases

import (
	"errors"
	"strings"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase implementa registro y verificación de credenciales. La firma y
// validación de tokens vive en el middleware HTTP; aquí solo se manejan
// contraseñas y usuarios.
type AuthUseCase struct {
	usuarioRepo *repositories.UsuarioRepository
}

// NewAuthUseCase crea una nueva instancia de AuthUseCase
func NewAuthUseCase(usuarioRepo *repositories.UsuarioRepository) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo}
}

// Registrar crea un usuario nuevo con la contraseña cifrada con bcrypt
func (u *AuthUseCase) Registrar(nombre, email, password string) (*entities.Usuario, error) {
	if strings.TrimSpace(nombre) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, apperr.Validacion("nombre, email y contraseña son obligatorios")
	}
	if len(password) < 8 {
		return nil, apperr.Validacion("la contraseña debe tener al menos 8 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &entities.Usuario{
		ID:           uuid.New(),
		Nombre:       nombre,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Rol:          entities.RolUsuarioComun,
	}

	if err := u.usuarioRepo.CreateUsuario(usuario); err != nil {
		return nil, err
	}

	return usuario, nil
}

// Login verifica las credenciales y retorna el usuario. Credenciales
// incorrectas y correos inexistentes producen el mismo error.
func (u *AuthUseCase) Login(email, password string) (*entities.Usuario, error) {
	usuario, err := u.usuarioRepo.GetPorEmail(email)
	if err != nil {
		if errors.Is(err, apperr.ErrNoEncontrado) {
			return nil, apperr.NoAutorizado("credenciales inválidas")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)) != nil {
		return nil, apperr.NoAutorizado("credenciales inválidas")
	}

	return usuario, nil
}

// GetUsuario retorna el perfil de un usuario autenticado
func (u *AuthUseCase) GetUsuario(id uuid.UUID) (*entities.Usuario, error) {
	return u.usuarioRepo.GetPorID(id)
}
