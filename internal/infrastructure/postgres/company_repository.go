package postgres

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	t docTable[entity.Company]
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{t: docTable[entity.Company]{db: db, table: "companies"}}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	_, err := r.t.db.Exec(ctx, `
		INSERT INTO companies (id, organisation, created_by, is_active, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Organisation, c.CreatedBy, c.IsActive, c, c.CreatedAt, c.UpdatedAt,
	)
	return wrap("insert company", err)
}

// GetByID obtiene una empresa por ID, activa o no.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.t.get(ctx, "get company", "id = $1", id)
}

func (r *CompanyRepo) FindActiveByOwner(ctx context.Context, organisation, createdBy string) (*entity.Company, error) {
	return r.t.get(ctx, "get active company",
		"organisation = $1 AND created_by = $2 AND is_active ORDER BY updated_at DESC",
		organisation, createdBy,
	)
}

func (r *CompanyRepo) ListActiveByCreator(ctx context.Context, createdBy string) ([]*entity.Company, error) {
	return r.t.list(ctx, "list companies", "created_by = $1 AND is_active", "created_at DESC", createdBy)
}

func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	return r.t.exec(ctx, "update company", `
		UPDATE companies SET organisation = $2, is_active = $3, doc = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.Organisation, c.IsActive, c, c.UpdatedAt,
	)
}
