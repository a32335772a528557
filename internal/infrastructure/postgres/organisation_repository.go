package postgres

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

var _ repository.OrganisationRepository = (*OrganisationRepo)(nil)

// OrganisationRepo implementación de OrganisationRepository; la unicidad la garantizan índices
// de expresión sobre doc.
type OrganisationRepo struct {
	t docTable[entity.Organisation]
}

func NewOrganisationRepository(db DB) *OrganisationRepo {
	return &OrganisationRepo{t: docTable[entity.Organisation]{db: db, table: "organisations"}}
}

func (r *OrganisationRepo) Create(ctx context.Context, org *entity.Organisation) error {
	_, err := r.t.db.Exec(ctx,
		`INSERT INTO organisations (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		org.ID, org, org.CreatedAt, org.UpdatedAt,
	)
	return wrap("insert organisation", err)
}

func (r *OrganisationRepo) GetByID(ctx context.Context, id string) (*entity.Organisation, error) {
	return r.t.get(ctx, "get organisation", "id = $1", id)
}

func (r *OrganisationRepo) GetByName(ctx context.Context, name string) (*entity.Organisation, error) {
	return r.t.get(ctx, "get organisation by name", "doc->>'organisationName' = $1", name)
}

func (r *OrganisationRepo) List(ctx context.Context) ([]*entity.Organisation, error) {
	return r.t.list(ctx, "list organisations", "TRUE", "created_at DESC")
}

func (r *OrganisationRepo) Update(ctx context.Context, org *entity.Organisation) error {
	return r.t.exec(ctx, "update organisation",
		`UPDATE organisations SET doc = $2, updated_at = $3 WHERE id = $1`,
		org.ID, org, org.UpdatedAt,
	)
}

func (r *OrganisationRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.t.db.Exec(ctx, `DELETE FROM organisations WHERE id = $1`, id)
	if err != nil {
		return false, wrap("delete organisation", err)
	}
	return tag.RowsAffected() > 0, nil
}
