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

const msgOrganisationExists = "Organisation with this name already exists"

// OrganisationUseCase gestiona los tenants. Sólo lo invocan rutas de Superadmin.
type OrganisationUseCase struct {
	repo repository.OrganisationRepository
}

func NewOrganisationUseCase(repo repository.OrganisationRepository) *OrganisationUseCase {
	return &OrganisationUseCase{repo: repo}
}

// Create da de alta una organisation con organisationId generado. Devuelve domain.ErrDuplicate
// si el nombre ya existe.
func (uc *OrganisationUseCase) Create(ctx context.Context, in dto.CreateOrganisationRequest) (*dto.OrganisationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	name := entity.NormalizeOrganisationName(in.OrganisationName)
	if name == "" {
		return nil, domain.Invalid("organisationName is required")
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrDuplicate, msgOrganisationExists)
	}

	now := time.Now().UTC()
	org := &entity.Organisation{
		ID:               uuid.New().String(),
		OrganisationName: name,
		OnboardDate:      now,
		PaymentStatus:    entity.PaymentPending,
		OrganisationID:   uuid.New().String(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.OnboardDate != nil {
		org.OnboardDate = in.OnboardDate.UTC()
	}
	if in.PaymentStatus != "" {
		org.PaymentStatus = entity.PaymentStatus(in.PaymentStatus)
	}
	if err := uc.repo.Create(ctx, org); err != nil {
		return nil, duplicateAs(err, msgOrganisationExists)
	}
	return entityToOrganisationResponse(org), nil
}

// List devuelve todas las organisations, sin paginar.
func (uc *OrganisationUseCase) List(ctx context.Context) ([]dto.OrganisationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganisationResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *entityToOrganisationResponse(o))
	}
	return out, nil
}

func (uc *OrganisationUseCase) GetByID(ctx context.Context, id string) (*dto.OrganisationResponse, error) {
	org, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToOrganisationResponse(org), nil
}

// Update aplica sólo los campos presentes. Renombrar a un nombre existente es ErrDuplicate.
func (uc *OrganisationUseCase) Update(ctx context.Context, id string, in dto.UpdateOrganisationRequest) (*dto.OrganisationResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	org, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.OrganisationName != nil {
		name := entity.NormalizeOrganisationName(*in.OrganisationName)
		if name == "" {
			return nil, domain.Invalid("organisationName cannot be empty")
		}
		if name != org.OrganisationName {
			other, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != org.ID {
				return nil, domain.Errorf(domain.ErrDuplicate, msgOrganisationExists)
			}
			org.OrganisationName = name
		}
	}
	if in.OnboardDate != nil {
		org.OnboardDate = in.OnboardDate.UTC()
	}
	if in.PaymentStatus != nil {
		org.PaymentStatus = entity.PaymentStatus(*in.PaymentStatus)
	}
	org.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, org); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, organisationNotFound()
		}
		return nil, duplicateAs(err, msgOrganisationExists)
	}
	return entityToOrganisationResponse(org), nil
}

// Delete borra físicamente la organisation.
func (uc *OrganisationUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return organisationNotFound()
	}
	return nil
}

func (uc *OrganisationUseCase) get(ctx context.Context, id string) (*entity.Organisation, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, organisationNotFound()
	}
	return org, nil
}

func organisationNotFound() error {
	return domain.Errorf(domain.ErrNotFound, "Organisation not found")
}

// duplicateAs da mensaje de cliente a un ErrDuplicate venido del índice único.
func duplicateAs(err error, msg string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.Errorf(domain.ErrDuplicate, "%s", msg)
	}
	return err
}

func entityToOrganisationResponse(o *entity.Organisation) *dto.OrganisationResponse {
	return &dto.OrganisationResponse{
		ID:               o.ID,
		OrganisationName: o.OrganisationName,
		OnboardDate:      o.OnboardDate,
		PaymentStatus:    string(o.PaymentStatus),
		OrganisationID:   o.OrganisationID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
