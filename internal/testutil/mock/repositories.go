// Package mock contiene dobles de los puertos de persistencia basados en testify/mock.
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

var (
	_ repository.OrganisationRepository = (*OrganisationRepository)(nil)
	_ repository.CompanyRepository      = (*CompanyRepository)(nil)
	_ repository.UserRepository         = (*UserRepository)(nil)
	_ repository.TemplateRepository     = (*TemplateRepository)(nil)
	_ repository.OfferRepository        = (*OfferRepository)(nil)
)

type OrganisationRepository struct {
	mock.Mock
}

func (m *OrganisationRepository) Create(ctx context.Context, org *entity.Organisation) error {
	return m.Called(ctx, org).Error(0)
}

func (m *OrganisationRepository) GetByID(ctx context.Context, id string) (*entity.Organisation, error) {
	args := m.Called(ctx, id)
	org, _ := args.Get(0).(*entity.Organisation)
	return org, args.Error(1)
}

func (m *OrganisationRepository) GetByName(ctx context.Context, name string) (*entity.Organisation, error) {
	args := m.Called(ctx, name)
	org, _ := args.Get(0).(*entity.Organisation)
	return org, args.Error(1)
}

func (m *OrganisationRepository) List(ctx context.Context) ([]*entity.Organisation, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Organisation)
	return list, args.Error(1)
}

func (m *OrganisationRepository) Update(ctx context.Context, org *entity.Organisation) error {
	return m.Called(ctx, org).Error(0)
}

func (m *OrganisationRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Company)
	return c, args.Error(1)
}

func (m *CompanyRepository) FindActiveByOwner(ctx context.Context, organisation, createdBy string) (*entity.Company, error) {
	args := m.Called(ctx, organisation, createdBy)
	c, _ := args.Get(0).(*entity.Company)
	return c, args.Error(1)
}

func (m *CompanyRepository) ListActiveByCreator(ctx context.Context, createdBy string) ([]*entity.Company, error) {
	args := m.Called(ctx, createdBy)
	list, _ := args.Get(0).([]*entity.Company)
	return list, args.Error(1)
}

func (m *CompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type TemplateRepository struct {
	mock.Mock
}

func (m *TemplateRepository) Create(ctx context.Context, tpl *entity.Template) error {
	return m.Called(ctx, tpl).Error(0)
}

func (m *TemplateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*entity.Template)
	return t, args.Error(1)
}

func (m *TemplateRepository) ListActive(ctx context.Context, filter repository.TemplateFilter) ([]*entity.Template, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*entity.Template)
	return list, args.Error(1)
}

func (m *TemplateRepository) Update(ctx context.Context, tpl *entity.Template) error {
	return m.Called(ctx, tpl).Error(0)
}

type OfferRepository struct {
	mock.Mock
}

func (m *OfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *OfferRepository) CreateMany(ctx context.Context, offers []*entity.Offer) error {
	return m.Called(ctx, offers).Error(0)
}

func (m *OfferRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Offer)
	return o, args.Error(1)
}

func (m *OfferRepository) List(ctx context.Context, filter repository.OfferFilter) ([]*entity.Offer, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*entity.Offer)
	return list, args.Error(1)
}

func (m *OfferRepository) Update(ctx context.Context, offer *entity.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *OfferRepository) CountByStatus(ctx context.Context, q repository.OfferStatsQuery) (map[entity.OfferStatus]int64, error) {
	args := m.Called(ctx, q)
	counts, _ := args.Get(0).(map[entity.OfferStatus]int64)
	return counts, args.Error(1)
}
