package usecases

import (
	"github.com/cafeandino/encuestas-api/internal/domain/apperr"
	"github.com/cafeandino/encuestas-api/internal/domain/entities"
	"github.com/cafeandino/encuestas-api/internal/domain/repositories"
	"github.com/google/uuid"
)

// EncuestaUseCase implementa los casos de uso de composición, validación y
// ciclo de vida de encuestas
type EncuestaUseCase struct {
	encuestaRepo  *repositories.EncuestaRepository
	fincaRepo     *repositories.FincaRepository
	factorUseCase *FactorUseCase
}

// NewEncuestaUseCase crea una nueva instancia de EncuestaUseCase
func NewEncuestaUseCase(encuestaRepo *repositories.EncuestaRepository, fincaRepo *repositories.FincaRepository, factorUseCase *FactorUseCase) *EncuestaUseCase {
	return &EncuestaUseCase{
		encuestaRepo:  encuestaRepo,
		fincaRepo:     fincaRepo,
		factorUseCase: factorUseCase,
	}
}

// ResultadoValidacion es el resultado de validar un conjunto de respuestas
type ResultadoValidacion struct {
	Valido           bool  `json:"valido"`
	IndicesInvalidos []int `json:"indices_invalidos"`
}

// InitializeRespuestas produce una respuesta vacía por cada factor: el estado
// semilla de una encuesta nueva. Debe re-ejecutarse, descartando respuestas
// previas, cada vez que cambia el tipo de encuesta seleccionado.
func InitializeRespuestas(factores []entities.Factor) []entities.RespuestaFactor {
	respuestas := make([]entities.RespuestaFactor, len(factores))
	for i, f := range factores {
		respuestas[i] = entities.RespuestaFactor{FactorID: f.ID}
	}
	return respuestas
}

// valoresPorFactor indexa los ids de valores posibles por factor
func valoresPorFactor(factores []entities.Factor) map[uint]map[uint]bool {
	indice := make(map[uint]map[uint]bool, len(factores))
	for _, f := range factores {
		valores := make(map[uint]bool, len(f.ValoresPosibles))
		for _, v := range f.ValoresPosibles {
			valores[v.ID] = true
		}
		indice[f.ID] = valores
	}
	return indice
}

// ValidateForSubmit valida un conjunto de respuestas contra los factores del
// tipo de encuesta. Una respuesta es válida solo si su valor posible está
// definido Y pertenece al conjunto de valores de su factor declarado.
func ValidateForSubmit(factores []entities.Factor, respuestas []entities.RespuestaFactor) ResultadoValidacion {
	indice := valoresPorFactor(factores)

	resultado := ResultadoValidacion{Valido: true, IndicesInvalidos: []int{}}
	for i, r := range respuestas {
		valores, existeFactor := indice[r.FactorID]
		if r.ValorPosibleID == 0 || !existeFactor || !valores[r.ValorPosibleID] {
			resultado.Valido = false
			resultado.IndicesInvalidos = append(resultado.IndicesInvalidos, i)
		}
	}
	return resultado
}

// FiltrarRespuestas descarta las respuestas inválidas antes de persistir.
// Política deliberadamente laxa: las respuestas sin contestar o con
// referencias cruzadas se omiten en silencio y el envío procede con el
// subconjunto válido, permitiendo encuestas parciales.
func FiltrarRespuestas(factores []entities.Factor, respuestas []entities.RespuestaFactor) []entities.RespuestaFactor {
	indice := valoresPorFactor(factores)

	validas := make([]entities.RespuestaFactor, 0, len(respuestas))
	for _, r := range respuestas {
		valores, existeFactor := indice[r.FactorID]
		if r.ValorPosibleID != 0 && existeFactor && valores[r.ValorPosibleID] {
			validas = append(validas, r)
		}
	}
	return validas
}

// CanEdit indica si los campos de la encuesta admiten mutación. Una encuesta
// completada solo permite cambiar la propia bandera.
func CanEdit(encuesta *entities.Encuesta) bool {
	return !encuesta.Completada
}

// respuestasIguales compara dos conjuntos de respuestas por contenido,
// ignorando ids y orden
func respuestasIguales(a, b []entities.RespuestaFactor) bool {
	if len(a) != len(b) {
		return false
	}
	type clave struct {
		factorID       uint
		valorPosibleID uint
		texto          string
	}
	conteo := make(map[clave]int, len(a))
	for _, r := range a {
		conteo[clave{r.FactorID, r.ValorPosibleID, r.RespuestaTexto}]++
	}
	for _, r := range b {
		c := clave{r.FactorID, r.ValorPosibleID, r.RespuestaTexto}
		conteo[c]--
		if conteo[c] < 0 {
			return false
		}
	}
	return true
}

// ValidarActualizacion aplica la regla de bloqueo por completitud: mientras
// una encuesta esté completada, cualquier cambio sobre fecha, tipo, finca,
// observaciones o respuestas se rechaza; solo la bandera puede cambiar, en
// cualquier dirección.
func ValidarActualizacion(existente, cambios *entities.Encuesta) error {
	if !existente.Completada {
		return nil
	}

	protegidosIntactos := cambios.FechaAplicacion.Equal(existente.FechaAplicacion) &&
		cambios.TipoEncuestaID == existente.TipoEncuestaID &&
		cambios.FincaID == existente.FincaID &&
		cambios.Observaciones == existente.Observaciones &&
		respuestasIguales(cambios.Respuestas, existente.Respuestas)

	if !protegidosIntactos {
		return apperr.Conflicto("la encuesta %d está completada; reábrala antes de modificarla", existente.ID)
	}

	return nil
}

// GetEncuestas retorna encuestas filtradas y paginadas
func (u *EncuestaUseCase) GetEncuestas(params map[string]interface{}) ([]entities.Encuesta, int64, error) {
	return u.encuestaRepo.GetEncuestas(params)
}

// GetEncuesta retorna una encuesta por id con sus respuestas
func (u *EncuestaUseCase) GetEncuesta(id uint) (*entities.Encuesta, error) {
	return u.encuestaRepo.GetEncuesta(id)
}

// CrearEncuesta valida y persiste una encuesta nueva. Las respuestas
// inválidas se filtran antes de guardar; solo el subconjunto válido se
// persiste.
func (u *EncuestaUseCase) CrearEncuesta(encuesta *entities.Encuesta) error {
	if encuesta.FechaAplicacion.IsZero() {
		return apperr.Validacion("la fecha de aplicación es obligatoria")
	}

	if _, err := u.fincaRepo.GetFinca(encuesta.FincaID); err != nil {
		return err
	}

	factores, err := u.factorUseCase.LoadFactoresPorTipo(encuesta.TipoEncuestaID)
	if err != nil {
		return err
	}

	encuesta.Respuestas = FiltrarRespuestas(factores, encuesta.Respuestas)
	return u.encuestaRepo.CreateEncuesta(encuesta)
}

// ActualizarEncuesta aplica una actualización respetando la propiedad y el
// bloqueo por completitud. El actor debe ser el creador de la encuesta o un
// administrador.
func (u *EncuestaUseCase) ActualizarEncuesta(id uint, cambios *entities.Encuesta, actorID uuid.UUID, esAdmin bool) (*entities.Encuesta, error) {
	existente, err := u.encuestaRepo.GetEncuesta(id)
	if err != nil {
		return nil, err
	}

	if existente.UsuarioID != actorID && !esAdmin {
		return nil, apperr.NoAutorizado("la encuesta %d pertenece a otro usuario", id)
	}

	if err := ValidarActualizacion(existente, cambios); err != nil {
		return nil, err
	}

	if existente.Completada {
		// Solo la bandera puede cambiar
		if cambios.Completada != existente.Completada {
			if err := u.encuestaRepo.UpdateCompletada(id, cambios.Completada); err != nil {
				return nil, err
			}
		}
		return u.encuestaRepo.GetEncuesta(id)
	}

	factores, err := u.factorUseCase.LoadFactoresPorTipo(cambios.TipoEncuestaID)
	if err != nil {
		return nil, err
	}

	cambios.ID = id
	cambios.UsuarioID = existente.UsuarioID
	cambios.Respuestas = FiltrarRespuestas(factores, cambios.Respuestas)
	if err := u.encuestaRepo.UpdateEncuesta(cambios); err != nil {
		return nil, err
	}

	return u.encuestaRepo.GetEncuesta(id)
}
