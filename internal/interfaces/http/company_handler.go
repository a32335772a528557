package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el perfil de empresa.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Setup godoc
// @Summary      Crear o completar la empresa del usuario
// @Description  Si el usuario ya tiene una empresa activa en la organisation se actualiza (200); si no, se crea (201).
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SetupCompanyRequest  true  "Secciones de la empresa"
// @Success      200   {object}  dto.Envelope{data=dto.CompanySetupResponse}
// @Success      201   {object}  dto.Envelope{data=dto.CompanySetupResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/company/setup [post]
func (h *CompanyHandler) Setup(c *fiber.Ctx) error {
	var in dto.SetupCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Setup(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out.Created {
		return ok(c, fiber.StatusCreated, "Company created successfully", out)
	}
	return ok(c, fiber.StatusOK, "Company updated successfully", out)
}

// GetProfile godoc
// @Summary      Perfil completo de la empresa
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyProfileResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/company/profile/{id} [get]
func (h *CompanyHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Company profile retrieved successfully", out)
}

// GetByOrganisation godoc
// @Summary      Empresa activa del usuario en una organisation
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        organisationId  path  string  true  "ID de la organisation"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/company/organisation/{organisationId} [get]
// @Router       /api/user/company/my-company/{organisationId} [get]
func (h *CompanyHandler) GetByOrganisation(c *fiber.Ctx) error {
	out, err := h.uc.GetByOrganisation(c.UserContext(), GetPrincipal(c), c.Params("organisationId"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Company retrieved successfully", out)
}

// UpdateConfig godoc
// @Summary      Actualizar secciones de la empresa
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Secciones a reemplazar"
// @Success      200   {object}  dto.Envelope{data=dto.CompanyResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/company/config/{id} [put]
func (h *CompanyHandler) UpdateConfig(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UpdateConfig(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Company configuration updated successfully", out)
}

// Delete godoc
// @Summary      Desactivar empresa
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/company/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Company deleted successfully", nil)
}

// GetBenefits godoc
// @Summary      Beneficios de la empresa con valor anual
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyBenefitsResponse}
// @Router       /api/user/company/benefits/{id} [get]
func (h *CompanyHandler) GetBenefits(c *fiber.Ctx) error {
	out, err := h.uc.GetBenefits(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Company benefits retrieved successfully", out)
}

// GetCompliance godoc
// @Summary      Estado de cumplimiento de la empresa
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.Envelope{data=dto.CompanyComplianceResponse}
// @Router       /api/user/company/compliance/{id} [get]
func (h *CompanyHandler) GetCompliance(c *fiber.Ctx) error {
	out, err := h.uc.GetCompliance(c.UserContext(), GetPrincipal(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "Company compliance retrieved successfully", out)
}

// ListMine godoc
// @Summary      Empresas activas creadas por el usuario
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=[]dto.CompanyResponse}
// @Router       /api/user/company/user/companies [get]
func (h *CompanyHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return respondError(c, err)
	}
	return ok(c, fiber.StatusOK, "User companies retrieved successfully", out)
}
