package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	repomock "github.com/jhoicas/offerdesk-api/internal/testutil/mock"
)

// memCompanies guarda empresas en memoria para comprobar efectos acumulados.
type memCompanies struct {
	mu   sync.Mutex
	docs map[string]entity.Company
}

func newMemCompanies() *memCompanies {
	return &memCompanies{docs: map[string]entity.Company{}}
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[c.ID] = *c
	return nil
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCompanies) FindActiveByOwner(_ context.Context, organisation, createdBy string) (*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.docs {
		if c.Organisation == organisation && c.CreatedBy == createdBy && c.IsActive {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) ListActiveByCreator(_ context.Context, createdBy string) ([]*entity.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Company
	for _, c := range m.docs {
		if c.CreatedBy == createdBy && c.IsActive {
			c := c
			out = append(out, &c)
		}
	}
	return out, nil
}

func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m.docs[c.ID] = *c
	return nil
}

func (m *memCompanies) activeFor(organisation, createdBy string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.docs {
		if c.Organisation == organisation && c.CreatedBy == createdBy && c.IsActive {
			n++
		}
	}
	return n
}

type companyFixture struct {
	uc        *usecase.CompanyUseCase
	companies *memCompanies
	orgs      *repomock.OrganisationRepository
	users     *repomock.UserRepository
}

func newCompanyFixture() *companyFixture {
	f := &companyFixture{
		companies: newMemCompanies(),
		orgs:      new(repomock.OrganisationRepository),
		users:     new(repomock.UserRepository),
	}
	f.uc = usecase.NewCompanyUseCase(f.companies, f.orgs, f.users)
	return f
}

var (
	owner = entity.Principal{ID: "u1", Role: entity.RoleUser, Organisation: "org-1", Email: "token@acme.io", Name: "Token Name"}
	other = entity.Principal{ID: "u2", Role: entity.RoleUser, Organisation: "org-1"}
	admin = entity.Principal{ID: "u9", Role: entity.RoleAdmin, Organisation: "org-1"}
)

func setupRequest() dto.SetupCompanyRequest {
	return dto.SetupCompanyRequest{
		Organisation: "org-1",
		CompanySections: dto.CompanySections{
			Profile: &dto.ProfileInput{CompanyName: "Acme", Industry: "Software", CompanyType: "Private"},
		},
	}
}

func TestCompanyUseCase_Setup_CreaConContactoPorDefecto(t *testing.T) {
	f := newCompanyFixture()
	f.orgs.On("GetByID", mock.Anything, "org-1").Return(&entity.Organisation{ID: "org-1"}, nil)
	f.users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Name: "Ada", Email: "ada@acme.io", Phone: "+57 300"}, nil)

	out, err := f.uc.Setup(ctx, owner, setupRequest())
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.True(t, out.IsActive)
	assert.Equal(t, "u1", out.CreatedBy)
	assert.Equal(t, entity.ContactInfo{Email: "ada@acme.io", Phone: "+57 300", ContactPerson: "Ada"}, out.Profile.ContactInfo)
}

func TestCompanyUseCase_Setup_SinUsuarioUsaToken(t *testing.T) {
	f := newCompanyFixture()
	f.orgs.On("GetByID", mock.Anything, "org-1").Return(&entity.Organisation{ID: "org-1"}, nil)
	f.users.On("GetByID", mock.Anything, "u1").Return(nil, nil)

	in := setupRequest()
	in.Profile.ContactInfo = &dto.ContactInfoInput{Phone: "123"}
	out, err := f.uc.Setup(ctx, owner, in)
	require.NoError(t, err)
	assert.Equal(t, entity.ContactInfo{Email: "token@acme.io", Phone: "123", ContactPerson: "Token Name"}, out.Profile.ContactInfo)
}

func TestCompanyUseCase_Setup_SerializadoDejaUnaActiva(t *testing.T) {
	f := newCompanyFixture()
	f.orgs.On("GetByID", mock.Anything, "org-1").Return(&entity.Organisation{ID: "org-1"}, nil)
	f.users.On("GetByID", mock.Anything, "u1").Return(nil, nil)

	first, err := f.uc.Setup(ctx, owner, setupRequest())
	require.NoError(t, err)

	in := setupRequest()
	in.Profile.CompanyName = "Acme Renamed"
	in.Branding = &dto.BrandingInput{PrimaryColor: "#112233"}
	second, err := f.uc.Setup(ctx, owner, in)
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Renamed", second.Profile.CompanyName)
	assert.Equal(t, 1, f.companies.activeFor("org-1", "u1"))
}

func TestCompanyUseCase_Setup_Errores(t *testing.T) {
	f := newCompanyFixture()
	f.orgs.On("GetByID", mock.Anything, "org-404").Return(nil, nil)

	_, err := f.uc.Setup(ctx, owner, dto.SetupCompanyRequest{Organisation: "org-1"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "sin profile")

	in := setupRequest()
	in.Profile.Industry = ""
	_, err = f.uc.Setup(ctx, owner, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	in = setupRequest()
	in.Organisation = "org-2"
	_, err = f.uc.Setup(ctx, owner, in)
	assert.True(t, errors.Is(err, domain.ErrForbidden), "otra organisation")

	p := owner
	p.Organisation = "org-404"
	in = setupRequest()
	in.Organisation = "org-404"
	_, err = f.uc.Setup(ctx, p, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func seedCompany(f *companyFixture) *entity.Company {
	expired := time.Now().AddDate(0, -1, 0)
	monthly := decimal.NewFromInt(200)
	c := &entity.Company{
		ID: "c1", Organisation: "org-1", IsActive: true, CreatedBy: "u1", LastModifiedBy: "u1",
		Profile: entity.CompanyProfile{CompanyName: "Acme"},
		Benefits: []entity.Benefit{
			{Name: "Meal", Type: entity.BenefitAllowance, MonthlyValue: &monthly},
		},
		Compliance: []entity.ComplianceRecord{
			{Standard: "ISO 9001", IsRequired: true, Status: entity.ComplianceCompliant, ExpiryDate: &expired},
		},
	}
	_ = f.companies.Create(ctx, c)
	return c
}

func TestCompanyUseCase_GetProfile_Acceso(t *testing.T) {
	f := newCompanyFixture()
	seedCompany(f)
	f.orgs.On("GetByID", mock.Anything, "org-1").Return(&entity.Organisation{ID: "org-1", OrganisationName: "Acme Org", OrganisationID: "ext-1"}, nil)
	f.users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Name: "Ada"}, nil)

	_, err := f.uc.GetProfile(ctx, other, "c1")
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	out, err := f.uc.GetProfile(ctx, admin, "c1")
	require.NoError(t, err)
	require.NotNil(t, out.OrganisationRef)
	assert.Equal(t, "Acme Org", out.OrganisationRef.OrganisationName)
	require.NotNil(t, out.CreatedByRef)
	assert.Equal(t, "Ada", out.CreatedByRef.Name)

	_, err = f.uc.GetProfile(ctx, owner, "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCompanyUseCase_BeneficiosYCumplimiento(t *testing.T) {
	f := newCompanyFixture()
	seedCompany(f)

	b, err := f.uc.GetBenefits(ctx, owner, "c1")
	require.NoError(t, err)
	require.Len(t, b.Benefits, 1)
	assert.True(t, b.Benefits[0].AnnualValue.Equal(decimal.NewFromInt(2400)))

	_, err = f.uc.GetBenefits(ctx, other, "c1")
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	c, err := f.uc.GetCompliance(ctx, owner, "c1")
	require.NoError(t, err)
	assert.False(t, c.IsCompliant)
	assert.Len(t, c.Pending, 1)
}

func TestCompanyUseCase_UpdateConfig(t *testing.T) {
	f := newCompanyFixture()
	seedCompany(f)

	_, err := f.uc.UpdateConfig(ctx, other, "c1", dto.UpdateCompanyRequest{})
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	out, err := f.uc.UpdateConfig(ctx, admin, "c1", dto.UpdateCompanyRequest{CompanySections: dto.CompanySections{
		Settings: &entity.CompanySettings{OfferValidityDays: 15},
	}})
	require.NoError(t, err)
	assert.Equal(t, 15, out.Settings.OfferValidityDays)
	assert.Equal(t, "Acme", out.Profile.CompanyName, "las secciones ausentes no cambian")
	assert.Equal(t, "u9", out.LastModifiedBy)
}

func TestCompanyUseCase_Delete_EsBajaLogica(t *testing.T) {
	f := newCompanyFixture()
	seedCompany(f)

	assert.True(t, errors.Is(f.uc.Delete(ctx, other, "c1"), domain.ErrForbidden))
	require.NoError(t, f.uc.Delete(ctx, owner, "c1"))

	doc, err := f.companies.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, doc, "el documento sigue existiendo")
	assert.False(t, doc.IsActive)

	list, err := f.uc.ListMine(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.uc.GetByOrganisation(ctx, owner, "org-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
