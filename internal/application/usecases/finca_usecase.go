package usecases

import (
	"strings"

	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/google/uuid"
)

// FincaUseCase implementa los casos de uso de administración de fincas
type FincaUseCase struct {
	fincaRepo *repositories.FincaRepository
}

// NewFincaUseCase crea una nueva instancia de FincaUseCase
func NewFincaUseCase(fincaRepo *repositories.FincaRepository) *FincaUseCase {
	return &FincaUseCase{fincaRepo: fincaRepo}
}

// ValidarFinca valida los datos de una finca antes de cualquier escritura.
// Las coordenadas son opcionales e independientes, pero cuando están
// presentes deben caer en los rangos geográficos válidos.
func ValidarFinca(finca *entities.Finca) error {
	if strings.TrimSpace(finca.Nombre) == "" {
		return apperr.Validacion("el nombre de la finca es obligatorio")
	}
	if finca.Latitud != nil && (*finca.Latitud < -90 || *finca.Latitud > 90) {
		return apperr.Validacion("la latitud debe estar entre -90 y 90")
	}
	if finca.Longitud != nil && (*finca.Longitud < -180 || *finca.Longitud > 180) {
		return apperr.Validacion("la longitud debe estar entre -180 y 180")
	}
	return nil
}

// GetFincas retorna fincas filtradas y paginadas
func (u *FincaUseCase) GetFincas(params map[string]interface{}) ([]entities.Finca, int64, error) {
	return u.fincaRepo.GetFincas(params)
}

// GetFinca retorna una finca por id
func (u *FincaUseCase) GetFinca(id uint) (*entities.Finca, error) {
	return u.fincaRepo.GetFinca(id)
}

// CrearFinca valida y persiste una finca nueva para el usuario dado
func (u *FincaUseCase) CrearFinca(finca *entities.Finca, usuarioID uuid.UUID) error {
	finca.UsuarioID = usuarioID
	if err := ValidarFinca(finca); err != nil {
		return err
	}
	return u.fincaRepo.CreateFinca(finca)
}

// ActualizarFinca aplica cambios a una finca respetando la propiedad: solo el
// dueño o un administrador pueden modificarla
func (u *FincaUseCase) ActualizarFinca(id uint, cambios *entities.Finca, actorID uuid.UUID, esAdmin bool) (*entities.Finca, error) {
	existente, err := u.fincaRepo.GetFinca(id)
	if err != nil {
		return nil, err
	}
	if existente.UsuarioID != actorID && !esAdmin {
		return nil, apperr.NoAutorizado("la finca %d pertenece a otro usuario", id)
	}

	cambios.ID = id
	cambios.UsuarioID = existente.UsuarioID
	if err := ValidarFinca(cambios); err != nil {
		return nil, err
	}
	if err := u.fincaRepo.UpdateFinca(cambios); err != nil {
		return nil, err
	}
	return u.fincaRepo.GetFinca(id)
}

// EliminarFinca elimina una finca respetando propiedad y dependencias. El
// borrado falla con conflicto mientras existan encuestas que la referencien.
func (u *FincaUseCase) EliminarFinca(id uint, actorID uuid.UUID, esAdmin bool) error {
	existente, err := u.fincaRepo.GetFinca(id)
	if err != nil {
		return err
	}
	if existente.UsuarioID != actorID && !esAdmin {
		return apperr.NoAutorizado("la finca %d pertenece a otro usuario", id)
	}
	return u.fincaRepo.DeleteFinca(id)
}
