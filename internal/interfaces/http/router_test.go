package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/offerdesk-api/internal/interfaces/http"
	repomock "github.com/jhoicas/offerdesk-api/internal/testutil/mock"
	"github.com/jhoicas/offerdesk-api/pkg/logger"
)

type routerFixture struct {
	app       *fiber.App
	orgs      *repomock.OrganisationRepository
	companies *repomock.CompanyRepository
	users     *repomock.UserRepository
	templates *repomock.TemplateRepository
	offers    *repomock.OfferRepository
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		orgs:      new(repomock.OrganisationRepository),
		companies: new(repomock.CompanyRepository),
		users:     new(repomock.UserRepository),
		templates: new(repomock.TemplateRepository),
		offers:    new(repomock.OfferRepository),
	}
	f.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(f.app, apphttp.RouterDeps{
		OrganisationUC: usecase.NewOrganisationUseCase(f.orgs),
		CompanyUC:      usecase.NewCompanyUseCase(f.companies, f.orgs, f.users),
		TemplateUC:     usecase.NewTemplateUseCase(f.templates),
		OfferUC:        usecase.NewOfferUseCase(f.offers, f.templates, pdf.NewOfferPDFRenderer()),
		JWTSecret:      testJWTSecret,
		JWTIssuer:      testIssuer,
	})
	return f
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Code       string          `json:"code"`
}

func (f *routerFixture) do(t *testing.T, role entity.Role, method, path string, body interface{}) envelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenFor(t, role))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, resp.StatusCode, env.StatusCode, "statusCode del cuerpo igual al HTTP")
	return env
}

func TestRouter_Organisations_SoloSuperadmin(t *testing.T) {
	f := newRouterFixture()
	f.orgs.On("GetByName", mock.Anything, "Acme").Return(nil, nil)
	f.orgs.On("Create", mock.Anything, mock.Anything).Return(nil)

	env := f.do(t, entity.RoleAdmin, http.MethodPost, "/api/superadmin/organisations", map[string]string{"organisationName": "Acme"})
	assert.Equal(t, http.StatusForbidden, env.StatusCode)
	assert.False(t, env.Success)

	env = f.do(t, entity.RoleSuperadmin, http.MethodPost, "/api/superadmin/organisations", map[string]string{"organisationName": "Acme"})
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"organisationName":"Acme"`)
}

func TestRouter_Organisations_Duplicada400(t *testing.T) {
	f := newRouterFixture()
	f.orgs.On("GetByName", mock.Anything, "Acme").Return(&entity.Organisation{ID: "o1", OrganisationName: "Acme"}, nil)

	env := f.do(t, entity.RoleSuperadmin, http.MethodPost, "/api/superadmin/organisations", map[string]string{"organisationName": "Acme"})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "DUPLICATE", env.Code)
	assert.Equal(t, "Organisation with this name already exists", env.Message)
}

func TestRouter_Organisations_NoEncontrada404(t *testing.T) {
	f := newRouterFixture()
	f.orgs.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	env := f.do(t, entity.RoleSuperadmin, http.MethodGet, "/api/superadmin/organisations/missing", nil)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Code)
}

func TestRouter_Company_PerfilDeOtroUsuario403(t *testing.T) {
	f := newRouterFixture()
	f.companies.On("GetByID", mock.Anything, "c1").Return(&entity.Company{ID: "c1", Organisation: testOrgID, CreatedBy: "someone-else", IsActive: true}, nil)

	env := f.do(t, entity.RoleUser, http.MethodGet, "/api/user/company/profile/c1", nil)
	assert.Equal(t, http.StatusForbidden, env.StatusCode)
	assert.Equal(t, "FORBIDDEN", env.Code)
}

func TestRouter_Company_SetupSinProfile400(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleUser, http.MethodPost, "/api/user/company/setup", map[string]string{"organisation": testOrgID})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "VALIDATION", env.Code)
}

func TestRouter_Templates_SinSecciones400(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleUser, http.MethodPost, "/api/user/templates", map[string]interface{}{
		"name": "Standard", "department": "Engineering", "content": map[string]interface{}{"sections": []interface{}{}},
	})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "Template must have at least one section", env.Message)
	f.templates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_Templates_CuerpoNoObjeto400(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleUser, http.MethodPost, "/api/user/templates", []int{1, 2})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "INVALID_BODY", env.Code)
	f.templates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouter_Offers_AnalyticsInicioFuturo400(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleAdmin, http.MethodGet, "/api/user/offers/analytics?startDate=2999-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "Start date cannot be in the future", env.Message)
	f.offers.AssertNotCalled(t, "CountByStatus", mock.Anything, mock.Anything)
}

func TestRouter_Offers_SalarioMayorQueCTC400(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleUser, http.MethodPost, "/api/user/offers/generate", map[string]interface{}{
		"templateId": "t1",
		"candidateData": map[string]interface{}{
			"candidate_name": "Ada", "candidate_email": "ada@example.com", "designation": "Engineer",
			"department": "R&D", "base_salary": 50000, "total_ctc": 40000, "joining_date": "2099-01-01",
		},
	})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "Base salary cannot exceed total CTC", env.Message)
}

func TestRouter_Offers_BulkMasDe100(t *testing.T) {
	f := newRouterFixture()
	candidates := make([]map[string]interface{}, 101)
	for i := range candidates {
		candidates[i] = map[string]interface{}{"candidate_name": fmt.Sprintf("C%d", i)}
	}

	env := f.do(t, entity.RoleUser, http.MethodPost, "/api/user/offers/bulk-generate", map[string]interface{}{
		"templateId": "t1", "candidates": candidates,
	})
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.Equal(t, "Maximum 100 candidates allowed per bulk operation", env.Message)
}

func TestRouter_Offers_AnalyticsNoEsUnID(t *testing.T) {
	f := newRouterFixture()
	f.offers.On("CountByStatus", mock.Anything, mock.Anything).Return(map[entity.OfferStatus]int64{entity.OfferSent: 2}, nil)

	env := f.do(t, entity.RoleAdmin, http.MethodGet, "/api/user/offers/analytics", nil)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Contains(t, string(env.Data), `"total":2`)
	f.offers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRouter_Offers_FormatoDeDescargaInvalido(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleUser, http.MethodGet, "/api/user/offers/o1/download?format=html", nil)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	assert.True(t, strings.HasPrefix(env.Message, "Invalid format"))
}

func TestRouter_Offers_DescargaPDFBinaria(t *testing.T) {
	f := newRouterFixture()
	f.offers.On("GetByID", mock.Anything, "o1").Return(&entity.Offer{
		ID: "o1", Organisation: testOrgID, CreatedBy: testUserID, Status: entity.OfferDraft,
		CandidateData: entity.CandidateData{CandidateName: "Ada Lovelace"},
		Content:       entity.TemplateContent{Sections: []entity.Section{{ID: "s1", Type: "body", Content: "Welcome", Order: 1}}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/offers/o1/download", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleUser))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "offer-ada-lovelace-o1.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRouter_Offers_DescargaWordDevuelveDocumento(t *testing.T) {
	f := newRouterFixture()
	f.offers.On("GetByID", mock.Anything, "o1").Return(&entity.Offer{
		ID: "o1", Organisation: testOrgID, CreatedBy: testUserID,
		CandidateData: entity.CandidateData{CandidateName: "Ada"},
	}, nil)

	env := f.do(t, entity.RoleUser, http.MethodGet, "/api/user/offers/o1/download?format=word", nil)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Contains(t, string(env.Data), `"fileName":"offer-ada-o1.docx"`)
}

func TestRouter_RutaInexistente404(t *testing.T) {
	f := newRouterFixture()

	env := f.do(t, entity.RoleUser, http.MethodGet, "/api/user/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
	assert.Equal(t, "NOT_FOUND", env.Code)
}
