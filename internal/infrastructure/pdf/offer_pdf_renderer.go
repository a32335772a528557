// Package pdf genera la carta de oferta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: OFFER LETTER + candidato │ Fecha + referencia       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: cargo / departamento / incorporación / CTC        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIONES: título + contenido o bloques, en orden           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: estado + id de la oferta                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/offerdesk-api/internal/application/ports"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ ports.OfferDocumentRenderer = (*OfferPDFRenderer)(nil)

// OfferPDFRenderer implementa ports.OfferDocumentRenderer usando Maroto v2.
type OfferPDFRenderer struct{}

// NewOfferPDFRenderer construye el renderizador.
func NewOfferPDFRenderer() *OfferPDFRenderer { return &OfferPDFRenderer{} }

// RenderOfferPDF genera el PDF y devuelve sus bytes.
func (g *OfferPDFRenderer) RenderOfferPDF(_ context.Context, offer *entity.Offer) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Offer Letter - "+offer.CandidateData.CandidateName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(offer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(offer.CandidateData))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, r := range sectionRows(offer.Content) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(offer))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + candidato (izq) y fecha + referencia (der).
func headerRow(offer *entity.Offer) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("OFFER LETTER", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(offer.CandidateData.CandidateName, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Date: "+offer.CreatedAt.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Ref: "+offer.ID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: datos clave del puesto.
func summaryRow(cd entity.CandidateData) core.Row {
	joining := "-"
	if cd.JoiningDate != nil {
		joining = cd.JoiningDate.Format("02 Jan 2006")
	}
	label := func(l, v string, size int) core.Col {
		return col.New(size).Add(
			text.New(l, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(v, "-"), props.Text{Size: 9, Top: 6}),
		)
	}
	return row.New(14).Add(
		label("DESIGNATION", cd.Designation, 3),
		label("DEPARTMENT", cd.Department, 3),
		label("JOINING DATE", joining, 3),
		label("TOTAL CTC", cd.TotalCTC.StringFixed(2), 3),
	)
}

// sectionRows: una cabecera por sección con título y luego su texto o sus bloques.
func sectionRows(content entity.TemplateContent) []core.Row {
	sections := append([]entity.Section(nil), content.Sections...)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	var rows []core.Row
	for _, s := range sections {
		if s.Title != "" {
			rows = append(rows, row.New(9).Add(col.New(12).Add(
				text.New(s.Title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3}),
			)))
		}
		for _, p := range paragraphs(s) {
			rows = append(rows, row.New().Add(col.New(12).Add(
				text.New(p, props.Text{Size: 10, Top: 2, Bottom: 1, Align: align.Left}),
			)))
		}
	}
	return rows
}

// footerRow: estado actual de la oferta.
func footerRow(offer *entity.Offer) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Status: %s   |   Offer ID: %s", offer.Status, offer.ID),
			props.Text{Size: 7, Top: 2, Color: colorGray, Align: align.Center},
		)),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// paragraphs parte el contenido de la sección (o de sus bloques) en párrafos no vacíos.
func paragraphs(s entity.Section) []string {
	raw := []string{s.Content}
	if len(s.Blocks) > 0 {
		raw = raw[:0]
		for _, b := range s.Blocks {
			raw = append(raw, b.Content)
		}
	}
	var out []string
	for _, r := range raw {
		for _, p := range strings.Split(r, "\n") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
