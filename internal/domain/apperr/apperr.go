package apperr

import (
	"errors"
	"fmt"
)

// Errores centinela de la aplicación. Los repositorios y casos de uso los
// envuelven con contexto; los handlers los traducen a códigos HTTP.
var (
	// ErrValidacion indica datos de entrada inválidos. Nunca llega a la base de datos.
	ErrValidacion = errors.New("validación fallida")

	// ErrNoEncontrado indica que la entidad referenciada no existe.
	ErrNoEncontrado = errors.New("recurso no encontrado")

	// ErrNoAutorizado indica credenciales inválidas o permisos insuficientes.
	ErrNoAutorizado = errors.New("no autorizado")

	// ErrConflicto indica una violación de regla de negocio sobre el estado actual.
	ErrConflicto = errors.New("conflicto con el estado actual")
)

// Validacion construye un error de validación con mensaje formateado.
func Validacion(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidacion, fmt.Sprintf(format, args...))
}

// NoEncontrado construye un error de entidad inexistente.
func NoEncontrado(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNoEncontrado, fmt.Sprintf(format, args...))
}

// NoAutorizado construye un error de autorización.
func NoAutorizado(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNoAutorizado, fmt.Sprintf(format, args...))
}

// Conflicto construye un error de regla de negocio.
func Conflicto(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflicto, fmt.Sprintf(format, args...))
}
