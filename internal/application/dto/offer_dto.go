package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// CandidateInput datos del candidato tal como llegan en la petición. Los importes aceptan
// número o string numérico.
type CandidateInput struct {
	CandidateName    string           `json:"candidate_name"`
	CandidateEmail   string           `json:"candidate_email"`
	Designation      string           `json:"designation"`
	Department       string           `json:"department"`
	BaseSalary       decimal.Decimal  `json:"base_salary"`
	TotalCTC         decimal.Decimal  `json:"total_ctc"`
	HRA              *decimal.Decimal `json:"hra"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance"`
	StatutoryBonus   *decimal.Decimal `json:"statutory_bonus"`
	JoiningDate      string           `json:"joining_date"`
}

type GenerateOfferRequest struct {
	TemplateID    string         `json:"templateId"`
	CandidateData CandidateInput `json:"candidateData"`
}

type BulkGenerateOfferRequest struct {
	TemplateID string           `json:"templateId"`
	Candidates []CandidateInput `json:"candidates"`
}

type UpdateOfferStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type SendOfferRequest struct {
	EmailSubject string `json:"emailSubject"`
	EmailBody    string `json:"emailBody"`
}

type OfferResponse struct {
	ID            string                    `json:"id"`
	TemplateID    string                    `json:"templateId"`
	Organisation  string                    `json:"organisation"`
	CandidateData entity.CandidateData      `json:"candidateData"`
	Status        string                    `json:"status"`
	Content       entity.TemplateContent    `json:"content"`
	EmailSubject  string                    `json:"emailSubject,omitempty"`
	EmailBody     string                    `json:"emailBody,omitempty"`
	SentAt        *time.Time                `json:"sentAt,omitempty"`
	StatusHistory []entity.OfferStatusEntry `json:"statusHistory"`
	CreatedBy     string                    `json:"createdBy"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

type BulkGenerateOfferResponse struct {
	Count  int             `json:"count"`
	Offers []OfferResponse `json:"offers"`
}

// OfferDocumentResponse documento de la oferta. Data trae el PDF generado; en word va vacío
// y el contenido se entrega al conversor externo.
type OfferDocumentResponse struct {
	OfferID       string                 `json:"offerId"`
	FileName      string                 `json:"fileName"`
	Format        string                 `json:"format"`
	ContentType   string                 `json:"contentType"`
	CandidateName string                 `json:"candidateName"`
	Content       entity.TemplateContent `json:"content"`
	Data          []byte                 `json:"-"`
}

// OfferAnalyticsResponse conteo por estado en [From, To]. AcceptanceRate es
// accepted / (accepted + rejected), 0 si no hay respuestas.
type OfferAnalyticsResponse struct {
	From           time.Time        `json:"from"`
	To             time.Time        `json:"to"`
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	AcceptanceRate float64          `json:"acceptanceRate"`
}
