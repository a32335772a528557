package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

// TemplateUseCase gestiona las plantillas de carta de oferta de una organisation.
// La forma de los payloads la valida el middleware antes de llegar aquí.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func (uc *TemplateUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	now := time.Now().UTC()
	content := normalizeSections(in.Content)
	tpl := &entity.Template{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Department:     strings.TrimSpace(in.Department),
		Organisation:   p.Organisation,
		Content:        content,
		Variables:      content.ExtractVariables(),
		IsActive:       true,
		Version:        1,
		CreatedBy:      p.ID,
		LastModifiedBy: p.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return entityToTemplateResponse(tpl), nil
}

// List plantillas activas de la organisation del usuario; department vacío no filtra.
func (uc *TemplateUseCase) List(ctx context.Context, p entity.Principal, department string) ([]dto.TemplateResponse, error) {
	list, err := uc.repo.ListActive(ctx, repository.TemplateFilter{
		Organisation: p.Organisation,
		Department:   strings.TrimSpace(department),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *entityToTemplateResponse(t))
	}
	return out, nil
}

func (uc *TemplateUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.TemplateResponse, error) {
	tpl, err := activeTemplate(ctx, uc.repo, p, id)
	if err != nil {
		return nil, err
	}
	return entityToTemplateResponse(tpl), nil
}

// Update aplica los campos presentes y sube la versión.
func (uc *TemplateUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := uc.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		tpl.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		tpl.Description = *in.Description
	}
	if in.Department != nil {
		tpl.Department = strings.TrimSpace(*in.Department)
	}
	if in.Content != nil {
		tpl.Content = normalizeSections(*in.Content)
		tpl.Variables = tpl.Content.ExtractVariables()
	}
	tpl.Version++
	tpl.LastModifiedBy = p.ID
	tpl.UpdatedAt = time.Now().UTC()
	if err := uc.save(ctx, tpl); err != nil {
		return nil, err
	}
	return entityToTemplateResponse(tpl), nil
}

// Duplicate copia la plantilla con otro nombre; la copia pertenece al usuario.
func (uc *TemplateUseCase) Duplicate(ctx context.Context, p entity.Principal, id string, in dto.DuplicateTemplateRequest) (*dto.TemplateResponse, error) {
	src, err := activeTemplate(ctx, uc.repo, p, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	cp := *src
	cp.ID = uuid.New().String()
	cp.Name = strings.TrimSpace(in.NewName)
	cp.Organisation = p.Organisation
	cp.Content = src.Content.Render(nil) // copia profunda, sin sustituciones
	cp.Variables = append([]string(nil), src.Variables...)
	cp.Version = 1
	cp.CreatedBy = p.ID
	cp.LastModifiedBy = p.ID
	cp.CreatedAt = now
	cp.UpdatedAt = now
	if err := uc.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return entityToTemplateResponse(&cp), nil
}

// Preview sustituye los placeholders con sampleData sin guardar nada.
func (uc *TemplateUseCase) Preview(ctx context.Context, p entity.Principal, id string, in dto.PreviewTemplateRequest) (*dto.TemplatePreviewResponse, error) {
	tpl, err := activeTemplate(ctx, uc.repo, p, id)
	if err != nil {
		return nil, err
	}
	data := make(map[string]string, len(in.SampleData))
	for k, v := range in.SampleData {
		if v != nil {
			data[k] = sampleValue(v)
		}
	}
	missing := []string{}
	for _, v := range tpl.Content.ExtractVariables() {
		if _, ok := data[v]; !ok {
			missing = append(missing, v)
		}
	}
	return &dto.TemplatePreviewResponse{
		TemplateID:       tpl.ID,
		Name:             tpl.Name,
		Content:          tpl.Content.Render(data),
		MissingVariables: missing,
	}, nil
}

// sampleValue imprime los números del JSON sin notación científica.
func sampleValue(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n).String()
	case float32:
		return decimal.NewFromFloat32(n).String()
	default:
		return fmt.Sprint(v)
	}
}

// Delete es una baja lógica.
func (uc *TemplateUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	tpl, err := uc.owned(ctx, p, id)
	if err != nil {
		return err
	}
	tpl.IsActive = false
	tpl.LastModifiedBy = p.ID
	tpl.UpdatedAt = time.Now().UTC()
	return uc.save(ctx, tpl)
}

// owned exige además que el usuario sea el creador o tenga rol elevado.
func (uc *TemplateUseCase) owned(ctx context.Context, p entity.Principal, id string) (*entity.Template, error) {
	tpl, err := activeTemplate(ctx, uc.repo, p, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(tpl.CreatedBy) {
		return nil, domain.Errorf(domain.ErrForbidden, "Only the template creator or an admin can modify it")
	}
	return tpl, nil
}

func (uc *TemplateUseCase) save(ctx context.Context, tpl *entity.Template) error {
	if err := uc.repo.Update(ctx, tpl); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return templateNotFound()
		}
		return err
	}
	return nil
}

// activeTemplate carga una plantilla activa visible para el usuario: de su organisation, salvo
// Superadmin.
func activeTemplate(ctx context.Context, repo repository.TemplateRepository, p entity.Principal, id string) (*entity.Template, error) {
	tpl, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil || !tpl.IsActive {
		return nil, templateNotFound()
	}
	if tpl.Organisation != p.Organisation && p.Role != entity.RoleSuperadmin {
		return nil, domain.Errorf(domain.ErrForbidden, "Template belongs to another organisation")
	}
	return tpl, nil
}

// normalizeSections numera (1-based) las secciones que llegan sin orden.
func normalizeSections(c entity.TemplateContent) entity.TemplateContent {
	out := entity.TemplateContent{Sections: make([]entity.Section, len(c.Sections))}
	for i, s := range c.Sections {
		if s.Order == 0 {
			s.Order = i + 1
		}
		out.Sections[i] = s
	}
	return out
}

func templateNotFound() error {
	return domain.Errorf(domain.ErrNotFound, "Template not found")
}

func entityToTemplateResponse(t *entity.Template) *dto.TemplateResponse {
	vars := t.Variables
	if vars == nil {
		vars = []string{}
	}
	return &dto.TemplateResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		Department:     t.Department,
		Organisation:   t.Organisation,
		Content:        t.Content,
		Variables:      vars,
		IsActive:       t.IsActive,
		Version:        t.Version,
		CreatedBy:      t.CreatedBy,
		LastModifiedBy: t.LastModifiedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
