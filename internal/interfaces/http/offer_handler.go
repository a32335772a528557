package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
)

// OfferHandler maneja la generación y el ciclo de vida de las ofertas.
type OfferHandler struct {
	uc *usecase.OfferUseCase
}

func NewOfferHandler(uc *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar oferta desde una plantilla
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.GenerateOfferRequest  true  "Plantilla y candidato"
// @Success      201   {object}  dto.Envelope{data=dto.OfferResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/offers/generate [post]
func (h *OfferHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateOfferRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Generate(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, "Offer generated successfully", out)
}

// BulkGenerate godoc
// @Summary      Generar ofertas en lote (máx. 100)
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BulkGenerateOfferRequest  true  "Plantilla y candidatos"
// @Success      201   {object}  dto.Envelope{data=dto.BulkGenerateOfferResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/offers/bulk-generate [post]
func (h *OfferHandler) BulkGenerate(c *fiber.Ctx) error {
	var in dto.BulkGenerateOfferRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.BulkGenerate(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, "Offers generated successfully", out)
}

// List godoc
// @Summary      Listar ofertas
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filtrar por estado"
// @Success      200  {object}  dto.Envelope{data=[]dto.OfferResponse}
// @Router       /api/user/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Offers retrieved successfully", out)
}

// Get godoc
// @Summary      Obtener oferta
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la oferta"
// @Success      200  {object}  dto.Envelope{data=dto.OfferResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/offers/{id} [get]
func (h *OfferHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Offer retrieved successfully", out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la oferta
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "ID de la oferta"
// @Param        body  body  dto.UpdateOfferStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Envelope{data=dto.OfferResponse}
// @Router       /api/user/offers/{id}/status [patch]
func (h *OfferHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOfferStatusRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Offer status updated successfully", out)
}

// Send godoc
// @Summary      Registrar el envío de la oferta
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "ID de la oferta"
// @Param        body  body  dto.SendOfferRequest  true  "Asunto y cuerpo del email"
// @Success      200   {object}  dto.Envelope{data=dto.OfferResponse}
// @Router       /api/user/offers/{id}/send [post]
func (h *OfferHandler) Send(c *fiber.Ctx) error {
	var in dto.SendOfferRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Send(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Offer sent successfully", out)
}

// Download godoc
// @Summary      Descarga la oferta: PDF binario, o el documento JSON para el conversor Word
// @Tags         offers
// @Produce      application/pdf
// @Produce      json
// @Security     BearerAuth
// @Param        id      path   string  true   "ID de la oferta"
// @Param        format  query  string  false  "pdf | word"  default(pdf)
// @Success      200  {object}  dto.Envelope{data=dto.OfferDocumentResponse}
// @Router       /api/user/offers/{id}/download [get]
func (h *OfferHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.Download(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	if len(out.Data) > 0 {
		c.Set(fiber.HeaderContentType, out.ContentType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.FileName+`"`)
		return c.Status(fiber.StatusOK).Send(out.Data)
	}
	return ok(c, fiber.StatusOK, "Offer document ready", out)
}

// Analytics godoc
// @Summary      Conteo de ofertas por estado
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "Inicio (RFC3339 o YYYY-MM-DD)"
// @Param        endDate    query  string  false  "Fin (RFC3339 o YYYY-MM-DD)"
// @Success      200  {object}  dto.Envelope{data=dto.OfferAnalyticsResponse}
// @Router       /api/user/offers/analytics [get]
func (h *OfferHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics(c.UserContext(), GetPrincipal(c), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Offer analytics retrieved successfully", out)
}
