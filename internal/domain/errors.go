package domain

import "errors"

// Categorías de error de dominio (sin dependencias externas).
// Cada una se traduce a un código HTTP estable en la capa de interfaces.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrDuplicate              = errors.New("duplicate")
	ErrNoMembership           = errors.New("no membership")
	ErrNotFound               = errors.New("not found")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbidden              = errors.New("forbidden")
	ErrUnauthorized           = errors.New("invalid credentials")
)

// Error asocia un mensaje legible a una categoría. errors.Is(err, ErrNotFound)
// sigue funcionando porque Unwrap devuelve la categoría.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// newError construye un *Error de la categoría dada.
func newError(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func InvalidInput(msg string) error { return newError(ErrInvalidInput, msg) }
func Duplicate(msg string) error    { return newError(ErrDuplicate, msg) }
func NotFound(msg string) error     { return newError(ErrNotFound, msg) }
func Forbidden(msg string) error    { return newError(ErrForbidden, msg) }

// NoMembership indica que el documento no está pre-registrado por ninguna empresa.
func NoMembership() error {
	return newError(ErrNoMembership, "the given user does not belong to any registered company")
}

// AuthenticationRequired se usa cuando no hay identidad válida en la petición.
func AuthenticationRequired() error {
	return newError(ErrAuthenticationRequired, "authentication required")
}

// Message devuelve el mensaje público de err; para errores sin categoría
// devuelve fallback para no filtrar detalles internos.
func Message(err error, fallback string) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return fallback
}
