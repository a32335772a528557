package postgres

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

type TemplateRepo struct {
	t docTable[entity.Template]
}

func NewTemplateRepository(db DB) *TemplateRepo {
	return &TemplateRepo{t: docTable[entity.Template]{db: db, table: "templates"}}
}

func (r *TemplateRepo) Create(ctx context.Context, tpl *entity.Template) error {
	_, err := r.t.db.Exec(ctx, `
		INSERT INTO templates (id, organisation, department, is_active, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		tpl.ID, tpl.Organisation, tpl.Department, tpl.IsActive, tpl, tpl.CreatedAt, tpl.UpdatedAt,
	)
	return wrap("insert template", err)
}

func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	return r.t.get(ctx, "get template", "id = $1", id)
}

// ListActive con department vacío no filtra por departamento.
func (r *TemplateRepo) ListActive(ctx context.Context, f repository.TemplateFilter) ([]*entity.Template, error) {
	return r.t.list(ctx, "list templates",
		"organisation = $1 AND is_active AND ($2 = '' OR department = $2)", "updated_at DESC",
		f.Organisation, f.Department,
	)
}

func (r *TemplateRepo) Update(ctx context.Context, tpl *entity.Template) error {
	return r.t.exec(ctx, "update template", `
		UPDATE templates SET department = $2, is_active = $3, doc = $4, updated_at = $5
		WHERE id = $1`,
		tpl.ID, tpl.Department, tpl.IsActive, tpl, tpl.UpdatedAt,
	)
}
