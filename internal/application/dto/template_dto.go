package dto

import (
	"time"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// CreateTemplateRequest entrada de POST /user/templates. La forma ya la comprobó el
// middleware de validación.
type CreateTemplateRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Department  string                 `json:"department"`
	Content     entity.TemplateContent `json:"content"`
}

// UpdateTemplateRequest actualización parcial.
type UpdateTemplateRequest struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Department  *string                 `json:"department"`
	Content     *entity.TemplateContent `json:"content"`
}

type DuplicateTemplateRequest struct {
	NewName string `json:"newName"`
}

type PreviewTemplateRequest struct {
	SampleData map[string]interface{} `json:"sampleData"`
}

type TemplateResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description,omitempty"`
	Department     string                 `json:"department"`
	Organisation   string                 `json:"organisation"`
	Content        entity.TemplateContent `json:"content"`
	Variables      []string               `json:"variables"`
	IsActive       bool                   `json:"isActive"`
	Version        int                    `json:"version"`
	CreatedBy      string                 `json:"createdBy"`
	LastModifiedBy string                 `json:"lastModifiedBy"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// TemplatePreviewResponse contenido con los placeholders sustituidos. MissingVariables lista
// los placeholders que sampleData no cubrió.
type TemplatePreviewResponse struct {
	TemplateID       string                 `json:"templateId"`
	Name             string                 `json:"name"`
	Content          entity.TemplateContent `json:"content"`
	MissingVariables []string               `json:"missingVariables"`
}
