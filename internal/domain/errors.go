package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Error asocia a un error de dominio (Kind) el mensaje que se devuelve al cliente.
// errors.Is(err, domain.ErrNotFound) sigue funcionando gracias a Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf construye un *Error del tipo kind con mensaje formateado.
func Errorf(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Invalid es atajo para errores de validación (400).
func Invalid(format string, args ...interface{}) error {
	return Errorf(ErrInvalidInput, format, args...)
}

// Message devuelve el mensaje para el cliente: el de *Error si existe, si no err.Error().
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
