package entity

import (
	"regexp"
	"sort"
	"time"
)

// Template es el esqueleto de una carta de oferta: secciones ordenadas con placeholders
// del tipo {{candidate_name}} que se sustituyen al generar la oferta.
type Template struct {
	ID             string          `json:"id" bson:"_id"`
	Name           string          `json:"name" bson:"name"`
	Description    string          `json:"description,omitempty" bson:"description,omitempty"`
	Department     string          `json:"department" bson:"department"`
	Organisation   string          `json:"organisation" bson:"organisation"`
	Content        TemplateContent `json:"content" bson:"content"`
	Variables      []string        `json:"variables" bson:"variables"`
	IsActive       bool            `json:"isActive" bson:"isActive"`
	Version        int             `json:"version" bson:"version"`
	CreatedBy      string          `json:"createdBy" bson:"createdBy"`
	LastModifiedBy string          `json:"lastModifiedBy" bson:"lastModifiedBy"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type TemplateContent struct {
	Sections []Section `json:"sections" bson:"sections"`
}

// Section lleva Content o Blocks (al menos uno de los dos).
type Section struct {
	ID      string  `json:"id" bson:"id"`
	Type    string  `json:"type" bson:"type"`
	Title   string  `json:"title,omitempty" bson:"title,omitempty"`
	Content string  `json:"content,omitempty" bson:"content,omitempty"`
	Blocks  []Block `json:"blocks,omitempty" bson:"blocks,omitempty"`
	Order   int     `json:"order" bson:"order"`
}

type Block struct {
	ID      string `json:"id" bson:"id"`
	Type    string `json:"type" bson:"type"`
	Content string `json:"content" bson:"content"`
}

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.]+)\s*\}\}`)

// RenderText sustituye los placeholders presentes en data; los desconocidos se dejan tal cual.
func RenderText(text string, data map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		key := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := data[key]; ok {
			return v
		}
		return m
	})
}

// Render devuelve una copia de las secciones con los placeholders sustituidos.
func (c TemplateContent) Render(data map[string]string) TemplateContent {
	out := TemplateContent{Sections: make([]Section, 0, len(c.Sections))}
	for _, s := range c.Sections {
		s.Title = RenderText(s.Title, data)
		s.Content = RenderText(s.Content, data)
		if len(s.Blocks) > 0 {
			blocks := make([]Block, len(s.Blocks))
			for i, b := range s.Blocks {
				b.Content = RenderText(b.Content, data)
				blocks[i] = b
			}
			s.Blocks = blocks
		}
		out.Sections = append(out.Sections, s)
	}
	return out
}

// ExtractVariables lista, sin duplicados y ordenados, los placeholders usados en el contenido.
func (c TemplateContent) ExtractVariables() []string {
	seen := map[string]struct{}{}
	collect := func(text string) {
		for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
			seen[m[1]] = struct{}{}
		}
	}
	for _, s := range c.Sections {
		collect(s.Title)
		collect(s.Content)
		for _, b := range s.Blocks {
			collect(b.Content)
		}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}
