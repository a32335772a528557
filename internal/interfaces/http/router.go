package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
	"github.com/jhoicas/offerdesk-api/internal/application/validation"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganisationUC *usecase.OrganisationUseCase
	CompanyUC      *usecase.CompanyUseCase
	TemplateUC     *usecase.TemplateUseCase
	OfferUC        *usecase.OfferUseCase
	JWTSecret      string
	JWTIssuer      string
}

// Router registra las rutas de la API. Todo /api exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Organisations (Superadmin)
	superadmin := api.Group("/superadmin", RequireRole(entity.RoleSuperadmin))
	orgs := superadmin.Group("/organisations")
	orgHandler := NewOrganisationHandler(deps.OrganisationUC)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/", orgHandler.List)
	orgs.Get("/:id", orgHandler.GetByID)
	orgs.Put("/:id", orgHandler.Update)
	orgs.Delete("/:id", orgHandler.Delete)

	user := api.Group("/user", RequireRole(entity.UserRoles...))

	// Company
	company := user.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Post("/setup", companyHandler.Setup)
	company.Get("/profile/:id", companyHandler.GetProfile)
	company.Get("/organisation/:organisationId", companyHandler.GetByOrganisation)
	company.Get("/my-company/:organisationId", companyHandler.GetByOrganisation)
	company.Put("/config/:id", companyHandler.UpdateConfig)
	company.Get("/benefits/:id", companyHandler.GetBenefits)
	company.Get("/compliance/:id", companyHandler.GetCompliance)
	company.Get("/user/companies", companyHandler.ListMine)
	company.Delete("/:id", companyHandler.Delete)

	// Templates
	templates := user.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Post("/", ValidateBody(validation.TemplateCreation), templateHandler.Create)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.Get)
	templates.Put("/:id", ValidateBody(validation.TemplateUpdate), templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)
	templates.Post("/:id/duplicate", ValidateBody(validation.TemplateDuplication), templateHandler.Duplicate)
	templates.Post("/:id/preview", ValidateBody(validation.TemplatePreview), templateHandler.Preview)

	// Offers: /analytics antes de /:id
	offers := user.Group("/offers")
	offerHandler := NewOfferHandler(deps.OfferUC)
	offers.Post("/generate", ValidateBody(atNow(validation.OfferGeneration)), offerHandler.Generate)
	offers.Post("/bulk-generate", ValidateBody(atNow(validation.BulkOfferGeneration)), offerHandler.BulkGenerate)
	offers.Get("/", offerHandler.List)
	offers.Get("/analytics", ValidateAnalyticsRange(), offerHandler.Analytics)
	offers.Get("/:id", offerHandler.Get)
	offers.Patch("/:id/status", ValidateBody(validation.OfferStatusUpdate), offerHandler.UpdateStatus)
	offers.Post("/:id/send", ValidateBody(validation.OfferSending), offerHandler.Send)
	offers.Get("/:id/download", ValidateDownloadFormat(), offerHandler.Download)
}
