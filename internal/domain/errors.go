package domain

import (
	"errors"
	"strings"

	"github.com/serranotex/serrano-tex-ims/internal/domain/validation"
)

// Errores de dominio.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// ValidationError transporta los mensajes de un validation.Result (Errors) o de un
// validation.FormResult (Fields). errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Errors []string
	Fields map[string][]string
}

// NewValidationError devuelve nil si r es válido.
func NewValidationError(r validation.Result) error {
	if r.IsValid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// NewFormValidationError devuelve nil si r es válido.
func NewFormValidationError(r validation.FormResult) error {
	if r.IsValid {
		return nil
	}
	return &ValidationError{Fields: r.Errors}
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
