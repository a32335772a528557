package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/usecase"
	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	repomock "github.com/jhoicas/offerdesk-api/internal/testutil/mock"
)

var ctx = context.Background()

func TestOrganisationUseCase_Create(t *testing.T) {
	repo := new(repomock.OrganisationRepository)
	uc := usecase.NewOrganisationUseCase(repo)

	repo.On("GetByName", mock.Anything, "Acme Corp").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Organisation")).Return(nil)

	out, err := uc.Create(ctx, dto.CreateOrganisationRequest{OrganisationName: "  Acme Corp "})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", out.OrganisationName)
	assert.Equal(t, string(entity.PaymentPending), out.PaymentStatus)
	assert.NotEmpty(t, out.OrganisationID)
	assert.False(t, out.OnboardDate.IsZero())
	repo.AssertExpectations(t)
}

func TestOrganisationUseCase_Create_NombreDuplicado(t *testing.T) {
	repo := new(repomock.OrganisationRepository)
	uc := usecase.NewOrganisationUseCase(repo)

	repo.On("GetByName", mock.Anything, "Acme").Return(&entity.Organisation{ID: "o1", OrganisationName: "Acme"}, nil)

	_, err := uc.Create(ctx, dto.CreateOrganisationRequest{OrganisationName: "Acme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, "Organisation with this name already exists", domain.Message(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrganisationUseCase_Create_IndiceUnico(t *testing.T) {
	repo := new(repomock.OrganisationRepository)
	uc := usecase.NewOrganisationUseCase(repo)

	// otra petición ganó la carrera entre GetByName y Create
	repo.On("GetByName", mock.Anything, "Acme").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	_, err := uc.Create(ctx, dto.CreateOrganisationRequest{OrganisationName: "Acme"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestOrganisationUseCase_Create_IdsDistintos(t *testing.T) {
	repo := new(repomock.OrganisationRepository)
	uc := usecase.NewOrganisationUseCase(repo)
	repo.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	seen := map[string]bool{}
	for _, name := range []string{"A Org", "B Org", "C Org", "D Org"} {
		out, err := uc.Create(ctx, dto.CreateOrganisationRequest{OrganisationName: name})
		require.NoError(t, err)
		assert.False(t, seen[out.OrganisationID], "organisationId repetido")
		seen[out.OrganisationID] = true
	}
}

func TestOrganisationUseCase_Create_Validacion(t *testing.T) {
	uc := usecase.NewOrganisationUseCase(new(repomock.OrganisationRepository))

	_, err := uc.Create(ctx, dto.CreateOrganisationRequest{OrganisationName: "   "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(ctx, dto.CreateOrganisationRequest{OrganisationName: "X", PaymentStatus: "Late"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestOrganisationUseCase_Update(t *testing.T) {
	repo := new(repomock.OrganisationRepository)
	uc := usecase.NewOrganisationUseCase(repo)

	org := &entity.Organisation{ID: "o1", OrganisationName: "Acme", PaymentStatus: entity.PaymentPending}
	repo.On("GetByID", mock.Anything, "o1").Return(org, nil)
	repo.On("GetByName", mock.Anything, "Globex").Return(&entity.Organisation{ID: "o2", OrganisationName: "Globex"}, nil)
	repo.On("Update", mock.Anything, org).Return(nil)

	rename := "Globex"
	_, err := uc.Update(ctx, "o1", dto.UpdateOrganisationRequest{OrganisationName: &rename})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	paid := "Paid"
	out, err := uc.Update(ctx, "o1", dto.UpdateOrganisationRequest{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Equal(t, "Paid", out.PaymentStatus)
	assert.Equal(t, "Acme", out.OrganisationName)
}

func TestOrganisationUseCase_NoEncontrada(t *testing.T) {
	repo := new(repomock.OrganisationRepository)
	uc := usecase.NewOrganisationUseCase(repo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, nil)
	repo.On("Delete", mock.Anything, "missing").Return(false, nil)

	_, err := uc.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Update(ctx, "missing", dto.UpdateOrganisationRequest{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = uc.Delete(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
