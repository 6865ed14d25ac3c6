package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/validation"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/pkg/logger"
)

const internalMessage = "internal server error"

// writeError traduce err a status + dto.ErrorResponse. Los errores sin
// categoría se registran y salen como 500 con un mensaje fijo.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrNoMembership):
		status, code = fiber.StatusBadRequest, "NO_MEMBERSHIP"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrAuthenticationRequired):
		status, code = fiber.StatusUnauthorized, "AUTHENTICATION_REQUIRED"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	}

	body := dto.ErrorResponse{Code: code}
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("error interno")
		body.Message = internalMessage
		return c.Status(status).JSON(body)
	}

	body.Message = domain.Message(err, err.Error())
	var verr *validation.Error
	if errors.As(err, &verr) {
		body.Message = "validation error"
		body.Details = verr.Fields
	}
	return c.Status(status).JSON(body)
}

// invalidBody responde 400 cuando el JSON no se puede decodificar.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid request body"})
}
