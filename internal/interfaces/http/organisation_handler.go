package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
)

// OrganisationHandler expone la gestión de organisations (sólo Superadmin).
type OrganisationHandler struct {
	uc *usecase.OrganisationUseCase
}

// NewOrganisationHandler construye el handler inyectando el caso de uso.
func NewOrganisationHandler(uc *usecase.OrganisationUseCase) *OrganisationHandler {
	return &OrganisationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear organisation
// @Tags         organisations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOrganisationRequest  true  "Datos de la organisation"
// @Success      201   {object}  dto.Envelope{data=dto.OrganisationResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/superadmin/organisations [post]
func (h *OrganisationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganisationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusCreated, "Organisation created successfully", out)
}

// List godoc
// @Summary      Listar organisations
// @Tags         organisations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=[]dto.OrganisationResponse}
// @Router       /api/superadmin/organisations [get]
func (h *OrganisationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Organisations retrieved successfully", out)
}

// GetByID godoc
// @Summary      Obtener organisation por ID
// @Tags         organisations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la organisation"
// @Success      200  {object}  dto.Envelope{data=dto.OrganisationResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/superadmin/organisations/{id} [get]
func (h *OrganisationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Organisation retrieved successfully", out)
}

// Update godoc
// @Summary      Actualizar organisation
// @Tags         organisations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "ID de la organisation"
// @Param        body  body  dto.UpdateOrganisationRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Envelope{data=dto.OrganisationResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/superadmin/organisations/{id} [put]
func (h *OrganisationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrganisationRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Organisation updated successfully", out)
}

// Delete godoc
// @Summary      Borrar organisation
// @Tags         organisations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la organisation"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/superadmin/organisations/{id} [delete]
func (h *OrganisationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Organisation deleted successfully", nil)
}
