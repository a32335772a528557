package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

func TestOfferPDFRenderer_GeneraPDF(t *testing.T) {
	joining := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)
	offer := &entity.Offer{
		ID: "0f1e2d3c", Status: entity.OfferDraft, CreatedAt: time.Now(),
		CandidateData: entity.CandidateData{
			CandidateName: "Ada Lovelace", Designation: "Engineer", Department: "R&D",
			TotalCTC: decimal.NewFromInt(50000), JoiningDate: &joining,
		},
		Content: entity.TemplateContent{Sections: []entity.Section{
			{ID: "s2", Type: "body", Title: "Compensation", Content: "Your CTC is 50000.\n\nWelcome aboard.", Order: 2},
			{ID: "s1", Type: "header", Blocks: []entity.Block{{ID: "b1", Type: "text", Content: "Dear Ada Lovelace"}}, Order: 1},
		}},
	}

	out, err := NewOfferPDFRenderer().RenderOfferPDF(context.Background(), offer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe empezar con la cabecera PDF")
}

func TestParagraphs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, paragraphs(entity.Section{Content: "a\n\n  b  \n"}))
	assert.Equal(t, []string{"x", "y"}, paragraphs(entity.Section{
		Content: "ignored", Blocks: []entity.Block{{Content: "x"}, {Content: " "}, {Content: "y"}},
	}))
}
