package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/validation"
)

// ValidateBody aplica una regla de validación al cuerpo JSON antes del handler.
// El primer fallo se devuelve como 400 VALIDATION con su mensaje; un cuerpo que no es un
// objeto JSON es 400 INVALID_BODY.
func ValidateBody(rule func(validation.Payload) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := validation.Payload{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be a JSON object")
			}
		}
		if err := rule(body); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// atNow adapta las reglas que dependen de la fecha actual.
func atNow(rule func(validation.Payload, time.Time) error) func(validation.Payload) error {
	return func(body validation.Payload) error {
		return rule(body, time.Now().UTC())
	}
}

// ValidateDownloadFormat valida ?format= de la descarga.
func ValidateDownloadFormat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := validation.OfferDownload(c.Query("format")); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}

// ValidateAnalyticsRange valida ?startDate=&endDate= de la analítica.
func ValidateAnalyticsRange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := validation.AnalyticsDateRange(c.Query("startDate"), c.Query("endDate"), time.Now().UTC()); err != nil {
			return respondError(c, err)
		}
		return c.Next()
	}
}
