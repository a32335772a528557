package repository

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// TemplateFilter criterios de listado. Department vacío = todos.
type TemplateFilter struct {
	Organisation string
	Department   string
}

// TemplateRepository define el puerto de persistencia para Template.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *entity.Template) error
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	// ListActive devuelve las plantillas activas que cumplen el filtro, más recientes primero.
	ListActive(ctx context.Context, filter TemplateFilter) ([]*entity.Template, error)
	Update(ctx context.Context, tpl *entity.Template) error
}
