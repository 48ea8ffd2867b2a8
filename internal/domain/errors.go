package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrBackendUnavailable = errors.New("backend de inventario no disponible")
)

// Mensajes de validación mostrados al usuario junto al formulario.
const (
	MsgNameCategoryRequired = "Name and category are required."
	MsgNumbersRequired      = "Quantity and minimum threshold must be numbers."
	MsgNegativeValues       = "Values cannot be negative."
	MsgInvalidDelta         = "Delta must be a non-zero integer."
	MsgValueTooLarge        = "Values are too large."
)

// ValidationError error local previo a cualquier llamada de red. Nunca se envía la petición.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// BackendError respuesta no-2xx del backend REST.
type BackendError struct {
	Op         string // fetch, add, adjust
	StatusCode int
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: HTTP %d", e.Op, e.StatusCode)
}

// Unwrap permite errors.Is(err, ErrBackendUnavailable).
func (e *BackendError) Unwrap() error { return ErrBackendUnavailable }

// IsValidation indica si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
