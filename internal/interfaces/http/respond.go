package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/pkg/logger"
)

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Envelope{Success: true, Message: message, Data: data, StatusCode: status})
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Envelope{Success: false, Message: message, StatusCode: status, Code: code})
}

// respondError traduce los errores de dominio a la envoltura de respuesta.
func respondError(c *fiber.Ctx, err error) error {
	msg := domain.Message(err)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", msg)
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusBadRequest, "DUPLICATE", msg)
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", msg)
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", msg)
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", msg)
	default:
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// ErrorHandler responde con la envoltura también para los errores que no pasan por un handler
// (ruta inexistente, panics recuperados, cuerpo demasiado grande).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "INTERNAL"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
				code = "INVALID_BODY"
			}
			return fail(c, fe.Code, code, fe.Message)
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return respondError(c, err)
	}
}

// parseBody decodifica el cuerpo en dst; el middleware de validación ya comprobó su forma.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.Invalid("Invalid request body: %s", err.Error())
	}
	return nil
}
