package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
)

// TemplateHandler maneja las plantillas de carta de oferta.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plantilla
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTemplateRequest  true  "Plantilla"
// @Success      201   {object}  dto.Envelope{data=dto.TemplateResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, "Template created successfully", out)
}

// List godoc
// @Summary      Listar plantillas activas de la organisation
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        department  query  string  false  "Filtrar por departamento"
// @Success      200  {object}  dto.Envelope{data=[]dto.TemplateResponse}
// @Router       /api/user/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetPrincipal(c), c.Query("department"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Templates retrieved successfully", out)
}

// Get godoc
// @Summary      Obtener plantilla
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.Envelope{data=dto.TemplateResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/templates/{id} [get]
func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Template retrieved successfully", out)
}

// Update godoc
// @Summary      Actualizar plantilla
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID de la plantilla"
// @Param        body  body  dto.UpdateTemplateRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Envelope{data=dto.TemplateResponse}
// @Router       /api/user/templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTemplateRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Template updated successfully", out)
}

// Duplicate godoc
// @Summary      Duplicar plantilla
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                        true  "ID de la plantilla"
// @Param        body  body  dto.DuplicateTemplateRequest  true  "Nombre de la copia"
// @Success      201   {object}  dto.Envelope{data=dto.TemplateResponse}
// @Router       /api/user/templates/{id}/duplicate [post]
func (h *TemplateHandler) Duplicate(c *fiber.Ctx) error {
	var in dto.DuplicateTemplateRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Duplicate(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, "Template duplicated successfully", out)
}

// Preview godoc
// @Summary      Previsualizar plantilla con datos de ejemplo
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID de la plantilla"
// @Param        body  body  dto.PreviewTemplateRequest  false "Datos de ejemplo"
// @Success      200   {object}  dto.Envelope{data=dto.TemplatePreviewResponse}
// @Router       /api/user/templates/{id}/preview [post]
func (h *TemplateHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewTemplateRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &in); err != nil {
			return respondError(c, err)
		}
	}
	out, err := h.uc.Preview(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Template preview generated successfully", out)
}

// Delete godoc
// @Summary      Desactivar plantilla
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.Envelope
// @Router       /api/user/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Template deleted successfully", nil)
}
