package dto

import "github.com/jhoicas/directorio-api/internal/application/validation"

// ErrorResponse cuerpo de error HTTP. Details solo aparece en errores de validación.
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
