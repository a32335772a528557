package validation

import (
	"strings"

	"github.com/jhoicas/offerdesk-api/internal/domain"
)

const (
	minTemplateNameLength = 3
	maxTemplateNameLength = 100
)

// TemplateCreation valida el cuerpo de POST /templates.
func TemplateCreation(body Payload) error {
	if err := templateName(body["name"], "Template name is required"); err != nil {
		return err
	}
	if body["content"] == nil {
		return domain.Invalid("Template content is required")
	}
	if IsBlank(body["department"]) {
		return domain.Invalid("Department is required")
	}
	return templateSections(body["content"])
}

// TemplateUpdate valida PUT /templates/:id: sólo se comprueban los campos presentes.
func TemplateUpdate(body Payload) error {
	if v, ok := body["name"]; ok {
		if err := templateName(v, "Template name is required"); err != nil {
			return err
		}
	}
	if v, ok := body["department"]; ok && IsBlank(v) {
		return domain.Invalid("Department cannot be empty")
	}
	if v, ok := body["content"]; ok {
		if v == nil {
			return domain.Invalid("Template content is required")
		}
		return templateSections(v)
	}
	return nil
}

// TemplateDuplication valida POST /templates/:id/duplicate.
func TemplateDuplication(body Payload) error {
	return templateName(body["newName"], "New template name is required")
}

// TemplatePreview valida POST /templates/:id/preview; sampleData es opcional.
func TemplatePreview(body Payload) error {
	v, ok := body["sampleData"]
	if !ok || v == nil {
		return nil
	}
	if _, isObj := v.(map[string]interface{}); !isObj {
		return domain.Invalid("Sample data must be an object")
	}
	return nil
}

func templateName(v interface{}, requiredMsg string) error {
	if IsBlank(v) {
		return domain.Invalid("%s", requiredMsg)
	}
	name, ok := v.(string)
	if !ok {
		return domain.Invalid("Template name must be a string")
	}
	if n := runeLen(strings.TrimSpace(name)); n < minTemplateNameLength || n > maxTemplateNameLength {
		return domain.Invalid("Template name must be between %d and %d characters", minTemplateNameLength, maxTemplateNameLength)
	}
	return nil
}

// templateSections exige al menos una sección, cada una con id, type y content o blocks.
func templateSections(content interface{}) error {
	c, ok := content.(map[string]interface{})
	if !ok {
		return domain.Invalid("Template content must be an object")
	}
	sections, ok := c["sections"].([]interface{})
	if !ok {
		return domain.Invalid("Template content must have a sections array")
	}
	if len(sections) == 0 {
		return domain.Invalid("Template must have at least one section")
	}
	for i, raw := range sections {
		s, ok := raw.(map[string]interface{})
		if !ok {
			return domain.Invalid("Section %d: must be an object", i+1)
		}
		if IsBlank(s["id"]) || IsBlank(s["type"]) {
			return domain.Invalid("Section %d: id and type are required", i+1)
		}
		blocks, _ := s["blocks"].([]interface{})
		if IsBlank(s["content"]) && len(blocks) == 0 {
			return domain.Invalid("Section %d: must have either content or blocks", i+1)
		}
	}
	return nil
}
