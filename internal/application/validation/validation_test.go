package validation_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/offerdesk-api/internal/application/validation"
	"github.com/jhoicas/offerdesk-api/internal/domain"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// payload decodifica JSON igual que lo haría el handler.
func payload(t *testing.T, raw string) validation.Payload {
	t.Helper()
	var p validation.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func candidate() map[string]interface{} {
	return map[string]interface{}{
		"candidate_name":  "Ada Lovelace",
		"candidate_email": "ada@example.com",
		"designation":     "Engineer",
		"department":      "R&D",
		"base_salary":     40000.0,
		"total_ctc":       50000.0,
	}
}

func assertInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, msg, domain.Message(err))
}

func TestOfferGeneration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(body validation.Payload, cd map[string]interface{})
		wantMsg string
	}{
		{"válido", func(validation.Payload, map[string]interface{}) {}, ""},
		{"sin templateId", func(b validation.Payload, _ map[string]interface{}) { delete(b, "templateId") }, "Template ID is required"},
		{"sin candidateData", func(b validation.Payload, _ map[string]interface{}) { delete(b, "candidateData") }, "Candidate data is required"},
		{"faltan campos", func(_ validation.Payload, cd map[string]interface{}) {
			delete(cd, "designation")
			cd["total_ctc"] = ""
		}, "Missing required candidate fields: designation, total_ctc"},
		{"email inválido", func(_ validation.Payload, cd map[string]interface{}) { cd["candidate_email"] = "ada@example" }, "Invalid candidate email format"},
		{"base no positiva", func(_ validation.Payload, cd map[string]interface{}) { cd["base_salary"] = 0.0 }, "Base salary must be a positive number"},
		{"ctc no numérico", func(_ validation.Payload, cd map[string]interface{}) { cd["total_ctc"] = "abc" }, "Total CTC must be a positive number"},
		{"base mayor que ctc", func(_ validation.Payload, cd map[string]interface{}) {
			cd["base_salary"] = 50000.0
			cd["total_ctc"] = 40000.0
		}, "Base salary cannot exceed total CTC"},
		{"importes como string", func(_ validation.Payload, cd map[string]interface{}) {
			cd["base_salary"] = "40000"
			cd["total_ctc"] = "50000.50"
		}, ""},
		{"hra negativa", func(_ validation.Payload, cd map[string]interface{}) { cd["hra"] = -1.0 }, "HRA must be a non-negative number"},
		{"bonus cero", func(_ validation.Payload, cd map[string]interface{}) { cd["statutory_bonus"] = 0.0 }, ""},
		{"fecha inválida", func(_ validation.Payload, cd map[string]interface{}) { cd["joining_date"] = "15/11/2026" }, "Invalid joining date format"},
		{"fecha pasada", func(_ validation.Payload, cd map[string]interface{}) { cd["joining_date"] = "2026-10-14" }, "Joining date cannot be in the past"},
		{"fecha hoy", func(_ validation.Payload, cd map[string]interface{}) { cd["joining_date"] = "2026-10-15" }, ""},
		{"fecha RFC3339", func(_ validation.Payload, cd map[string]interface{}) { cd["joining_date"] = "2026-11-01T09:00:00Z" }, ""},
		{"hoy con offset", func(_ validation.Payload, cd map[string]interface{}) { cd["joining_date"] = "2026-10-15T00:30:00+05:00" }, ""},
		{"ayer con offset", func(_ validation.Payload, cd map[string]interface{}) { cd["joining_date"] = "2026-10-14T23:30:00-05:00" }, "Joining date cannot be in the past"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := candidate()
			body := validation.Payload{"templateId": "tpl-1", "candidateData": cd}
			tt.mutate(body, cd)

			err := validation.OfferGeneration(body, now)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assertInvalid(t, err, tt.wantMsg)
		})
	}
}

func TestOfferGeneration_DesdeJSON(t *testing.T) {
	body := payload(t, `{"templateId":"t1","candidateData":{"candidate_name":"A","candidate_email":"a@b.co",
		"designation":"D","department":"X","base_salary":50000,"total_ctc":40000}}`)
	assertInvalid(t, validation.OfferGeneration(body, now), "Base salary cannot exceed total CTC")
}

func TestBulkOfferGeneration(t *testing.T) {
	t.Run("sin candidatos", func(t *testing.T) {
		assertInvalid(t, validation.BulkOfferGeneration(validation.Payload{"templateId": "t"}, now), "Candidates array is required")
	})

	t.Run("lista vacía", func(t *testing.T) {
		body := validation.Payload{"templateId": "t", "candidates": []interface{}{}}
		assertInvalid(t, validation.BulkOfferGeneration(body, now), "Candidates array cannot be empty")
	})

	t.Run("no es lista", func(t *testing.T) {
		body := validation.Payload{"templateId": "t", "candidates": "x"}
		assertInvalid(t, validation.BulkOfferGeneration(body, now), "Candidates must be an array")
	})

	t.Run("100 es el máximo", func(t *testing.T) {
		list := make([]interface{}, 100)
		for i := range list {
			list[i] = candidate()
		}
		body := validation.Payload{"templateId": "t", "candidates": list}
		assert.NoError(t, validation.BulkOfferGeneration(body, now))

		body["candidates"] = append(list, candidate())
		assertInvalid(t, validation.BulkOfferGeneration(body, now), "Maximum 100 candidates allowed per bulk operation")
	})

	t.Run("error con posición", func(t *testing.T) {
		bad := candidate()
		bad["candidate_email"] = "nope"
		body := validation.Payload{"templateId": "t", "candidates": []interface{}{candidate(), bad}}
		assertInvalid(t, validation.BulkOfferGeneration(body, now), "Candidate 2: Invalid candidate email format")
	})
}

func TestOfferStatusUpdate(t *testing.T) {
	assert.NoError(t, validation.OfferStatusUpdate(validation.Payload{"status": "accepted"}))

	err := validation.OfferStatusUpdate(validation.Payload{"status": "archived"})
	assertInvalid(t, err, "Invalid status. Must be one of: draft, pending_approval, approved, sent, viewed, accepted, rejected, expired, withdrawn")
	assert.Error(t, validation.OfferStatusUpdate(validation.Payload{}))
}

func TestOfferSending(t *testing.T) {
	assertInvalid(t, validation.OfferSending(validation.Payload{}), "Email subject or body is required")
	assert.NoError(t, validation.OfferSending(validation.Payload{"emailBody": "Hola"}))

	long := make([]rune, 201)
	for i := range long {
		long[i] = 'á'
	}
	assertInvalid(t, validation.OfferSending(validation.Payload{"emailSubject": string(long)}), "Email subject cannot exceed 200 characters")
	assert.NoError(t, validation.OfferSending(validation.Payload{"emailSubject": string(long[:200])}))
}

func TestOfferDownload(t *testing.T) {
	for _, f := range []string{"", "pdf", "PDF", "word"} {
		assert.NoError(t, validation.OfferDownload(f), f)
	}
	assertInvalid(t, validation.OfferDownload("docx"), "Invalid format. Must be 'pdf' or 'word'")
}

func TestAnalyticsDateRange(t *testing.T) {
	assert.NoError(t, validation.AnalyticsDateRange("", "", now))
	assert.NoError(t, validation.AnalyticsDateRange("2026-01-01", "2026-02-01", now))
	assertInvalid(t, validation.AnalyticsDateRange("ayer", "", now), "Invalid start date format")
	assertInvalid(t, validation.AnalyticsDateRange("", "mañana", now), "Invalid end date format")
	assertInvalid(t, validation.AnalyticsDateRange("2026-03-01", "2026-02-01", now), "Start date must be before end date")
	assertInvalid(t, validation.AnalyticsDateRange("2025-01-01", "", now), "Start date cannot be more than 1 year ago")
	assertInvalid(t, validation.AnalyticsDateRange("2026-10-20", "", now), "Start date cannot be in the future")
}

func section(id, typ, content string) map[string]interface{} {
	return map[string]interface{}{"id": id, "type": typ, "content": content}
}

func TestTemplateCreation(t *testing.T) {
	valid := func() validation.Payload {
		return validation.Payload{
			"name":       "Standard offer",
			"department": "Engineering",
			"content":    map[string]interface{}{"sections": []interface{}{section("s1", "header", "Dear {{candidate_name}}")}},
		}
	}
	assert.NoError(t, validation.TemplateCreation(valid()))

	tests := []struct {
		name    string
		mutate  func(validation.Payload)
		wantMsg string
	}{
		{"sin nombre", func(b validation.Payload) { delete(b, "name") }, "Template name is required"},
		{"nombre corto", func(b validation.Payload) { b["name"] = "ab" }, "Template name must be between 3 and 100 characters"},
		{"sin contenido", func(b validation.Payload) { delete(b, "content") }, "Template content is required"},
		{"sin departamento", func(b validation.Payload) { b["department"] = "  " }, "Department is required"},
		{"sin secciones", func(b validation.Payload) {
			b["content"] = map[string]interface{}{"sections": []interface{}{}}
		}, "Template must have at least one section"},
		{"sección sin type", func(b validation.Payload) {
			b["content"] = map[string]interface{}{"sections": []interface{}{section("s1", "", "x")}}
		}, "Section 1: id and type are required"},
		{"sección vacía", func(b validation.Payload) {
			b["content"] = map[string]interface{}{"sections": []interface{}{
				section("s1", "header", "x"),
				map[string]interface{}{"id": "s2", "type": "list", "blocks": []interface{}{}},
			}}
		}, "Section 2: must have either content or blocks"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)
			assertInvalid(t, validation.TemplateCreation(b), tt.wantMsg)
		})
	}

	t.Run("sección con bloques", func(t *testing.T) {
		b := valid()
		b["content"] = map[string]interface{}{"sections": []interface{}{
			map[string]interface{}{"id": "s1", "type": "list", "blocks": []interface{}{map[string]interface{}{"id": "b1"}}},
		}}
		assert.NoError(t, validation.TemplateCreation(b))
	})

	t.Run("nombre de 100 caracteres", func(t *testing.T) {
		b := valid()
		b["name"] = fmt.Sprintf("%0100d", 0)
		assert.NoError(t, validation.TemplateCreation(b))
		b["name"] = fmt.Sprintf("%0101d", 0)
		assert.Error(t, validation.TemplateCreation(b))
	})
}

func TestTemplateUpdateDuplicatePreview(t *testing.T) {
	assert.NoError(t, validation.TemplateUpdate(validation.Payload{"description": "x"}))
	assertInvalid(t, validation.TemplateUpdate(validation.Payload{"name": "x"}), "Template name must be between 3 and 100 characters")
	assertInvalid(t, validation.TemplateUpdate(validation.Payload{"department": ""}), "Department cannot be empty")
	assertInvalid(t, validation.TemplateUpdate(validation.Payload{"content": map[string]interface{}{"sections": []interface{}{}}}),
		"Template must have at least one section")

	assertInvalid(t, validation.TemplateDuplication(validation.Payload{}), "New template name is required")
	assert.NoError(t, validation.TemplateDuplication(validation.Payload{"newName": "Copy of offer"}))

	assert.NoError(t, validation.TemplatePreview(validation.Payload{}))
	assert.NoError(t, validation.TemplatePreview(validation.Payload{"sampleData": map[string]interface{}{"a": 1}}))
	assertInvalid(t, validation.TemplatePreview(validation.Payload{"sampleData": []interface{}{}}), "Sample data must be an object")
}
