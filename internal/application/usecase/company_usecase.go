package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

// CompanyUseCase gestiona el perfil de empresa de cada usuario dentro de su organisation.
//
// La regla "una sola empresa activa por (organisation, usuario)" se aplica leyendo antes de
// escribir (FindActiveByOwner y luego Create/Update). Dos Setup concurrentes del mismo usuario
// pueden crear dos empresas activas; no hay índice único ni transacción que lo impida.
type CompanyUseCase struct {
	companies     repository.CompanyRepository
	organisations repository.OrganisationRepository
	users         repository.UserRepository
}

func NewCompanyUseCase(
	companies repository.CompanyRepository,
	organisations repository.OrganisationRepository,
	users repository.UserRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, organisations: organisations, users: users}
}

// Setup crea la empresa activa del usuario en la organisation o, si ya existe, le aplica las
// secciones recibidas.
func (uc *CompanyUseCase) Setup(ctx context.Context, p entity.Principal, in dto.SetupCompanyRequest) (*dto.CompanySetupResponse, error) {
	if in.Profile == nil {
		return nil, domain.Invalid("profile is required")
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if p.Organisation != in.Organisation {
		return nil, domain.Errorf(domain.ErrForbidden, "You can only set up a company for your own organisation")
	}
	org, err := uc.organisations.GetByID(ctx, in.Organisation)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, organisationNotFound()
	}

	company, err := uc.companies.FindActiveByOwner(ctx, in.Organisation, p.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	created := company == nil
	if created {
		company = &entity.Company{
			ID:           uuid.New().String(),
			Organisation: in.Organisation,
			IsActive:     true,
			CreatedBy:    p.ID,
			CreatedAt:    now,
		}
	}
	applyCompanySections(company, in.CompanySections)
	if err := uc.fillContactDefaults(ctx, p, &company.Profile.ContactInfo); err != nil {
		return nil, err
	}
	company.LastModifiedBy = p.ID
	company.UpdatedAt = now

	if created {
		err = uc.companies.Create(ctx, company)
	} else {
		err = uc.companies.Update(ctx, company)
	}
	if err != nil {
		return nil, err
	}
	return &dto.CompanySetupResponse{
		ID:           company.ID,
		Organisation: company.Organisation,
		Profile:      company.Profile,
		IsActive:     company.IsActive,
		CreatedBy:    company.CreatedBy,
		Created:      created,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}, nil
}

// GetProfile devuelve la empresa con organisation y usuarios resueltos.
func (uc *CompanyUseCase) GetProfile(ctx context.Context, p entity.Principal, id string) (*dto.CompanyProfileResponse, error) {
	company, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyProfileResponse{CompanyResponse: *entityToCompanyResponse(company)}

	org, err := uc.organisations.GetByID(ctx, company.Organisation)
	if err != nil {
		return nil, err
	}
	if org != nil {
		out.OrganisationRef = &dto.OrganisationRef{
			ID:               org.ID,
			OrganisationName: org.OrganisationName,
			OrganisationID:   org.OrganisationID,
		}
	}
	if out.CreatedByRef, err = uc.userRef(ctx, company.CreatedBy); err != nil {
		return nil, err
	}
	if out.ModifiedByRef, err = uc.userRef(ctx, company.LastModifiedBy); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByOrganisation devuelve la empresa activa del usuario en la organisation.
func (uc *CompanyUseCase) GetByOrganisation(ctx context.Context, p entity.Principal, organisation string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.FindActiveByOwner(ctx, organisation, p.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Company not found for this organisation")
	}
	return entityToCompanyResponse(company), nil
}

// UpdateConfig aplica las secciones presentes y registra quién modificó.
func (uc *CompanyUseCase) UpdateConfig(ctx context.Context, p entity.Principal, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	company, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	applyCompanySections(company, in.CompanySections)
	company.LastModifiedBy = p.ID
	company.UpdatedAt = time.Now().UTC()
	if err := uc.companies.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, companyNotFound()
		}
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func (uc *CompanyUseCase) GetBenefits(ctx context.Context, p entity.Principal, id string) (*dto.CompanyBenefitsResponse, error) {
	company, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyBenefitsResponse{CompanyID: company.ID, Benefits: company.BenefitList()}, nil
}

func (uc *CompanyUseCase) GetCompliance(ctx context.Context, p entity.Principal, id string) (*dto.CompanyComplianceResponse, error) {
	company, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	compliance := company.Compliance
	if compliance == nil {
		compliance = []entity.ComplianceRecord{}
	}
	pending := company.PendingCompliance(now)
	if pending == nil {
		pending = []entity.ComplianceRecord{}
	}
	return &dto.CompanyComplianceResponse{
		CompanyID:   company.ID,
		IsCompliant: company.IsCompliant(now),
		Compliance:  compliance,
		Pending:     pending,
	}, nil
}

// Delete es una baja lógica: el documento se conserva con isActive=false.
func (uc *CompanyUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	company, err := uc.load(ctx, p, id)
	if err != nil {
		return err
	}
	company.IsActive = false
	company.LastModifiedBy = p.ID
	company.UpdatedAt = time.Now().UTC()
	if err := uc.companies.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return companyNotFound()
		}
		return err
	}
	return nil
}

// ListMine devuelve las empresas activas creadas por el usuario.
func (uc *CompanyUseCase) ListMine(ctx context.Context, p entity.Principal) ([]dto.CompanyResponse, error) {
	list, err := uc.companies.ListActiveByCreator(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *entityToCompanyResponse(c))
	}
	return out, nil
}

// load busca por id y exige que el usuario sea el creador o tenga rol elevado.
func (uc *CompanyUseCase) load(ctx context.Context, p entity.Principal, id string) (*entity.Company, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, companyNotFound()
	}
	if !p.CanAccess(company.CreatedBy) {
		return nil, domain.Errorf(domain.ErrForbidden, "Access denied")
	}
	return company, nil
}

// fillContactDefaults completa email/teléfono/persona de contacto vacíos con los datos del
// usuario y, si no hay registro, con los del token.
func (uc *CompanyUseCase) fillContactDefaults(ctx context.Context, p entity.Principal, ci *entity.ContactInfo) error {
	if ci.Email != "" && ci.Phone != "" && ci.ContactPerson != "" {
		return nil
	}
	email, phone, name := p.Email, "", p.Name
	user, err := uc.users.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if user != nil {
		email, phone, name = firstNonEmpty(user.Email, email), user.Phone, firstNonEmpty(user.Name, name)
	}
	if ci.Email == "" {
		ci.Email = email
	}
	if ci.Phone == "" {
		ci.Phone = phone
	}
	if ci.ContactPerson == "" {
		ci.ContactPerson = name
	}
	return nil
}

func (uc *CompanyUseCase) userRef(ctx context.Context, id string) (*dto.Ref, error) {
	if id == "" {
		return nil, nil
	}
	u, err := uc.users.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	return &dto.Ref{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}

func companyNotFound() error {
	return domain.Errorf(domain.ErrNotFound, "Company not found")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
