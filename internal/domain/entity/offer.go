package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus estado del ciclo de vida de una oferta.
type OfferStatus string

const (
	OfferDraft           OfferStatus = "draft"
	OfferPendingApproval OfferStatus = "pending_approval"
	OfferApproved        OfferStatus = "approved"
	OfferSent            OfferStatus = "sent"
	OfferViewed          OfferStatus = "viewed"
	OfferAccepted        OfferStatus = "accepted"
	OfferRejected        OfferStatus = "rejected"
	OfferExpired         OfferStatus = "expired"
	OfferWithdrawn       OfferStatus = "withdrawn"
)

// OfferStatuses en el orden del ciclo de vida.
var OfferStatuses = []OfferStatus{
	OfferDraft, OfferPendingApproval, OfferApproved, OfferSent, OfferViewed,
	OfferAccepted, OfferRejected, OfferExpired, OfferWithdrawn,
}

// Valid informa si el estado pertenece al enum.
func (s OfferStatus) Valid() bool {
	for _, v := range OfferStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Offer es una propuesta de compensación para un candidato generada desde un Template.
type Offer struct {
	ID            string             `json:"id" bson:"_id"`
	TemplateID    string             `json:"templateId" bson:"templateId"`
	Organisation  string             `json:"organisation" bson:"organisation"`
	CandidateData CandidateData      `json:"candidateData" bson:"candidateData"`
	Status        OfferStatus        `json:"status" bson:"status"`
	Content       TemplateContent    `json:"content" bson:"content"`
	EmailSubject  string             `json:"emailSubject,omitempty" bson:"emailSubject,omitempty"`
	EmailBody     string             `json:"emailBody,omitempty" bson:"emailBody,omitempty"`
	SentAt        *time.Time         `json:"sentAt,omitempty" bson:"sentAt,omitempty"`
	StatusHistory []OfferStatusEntry `json:"statusHistory" bson:"statusHistory"`
	CreatedBy     string             `json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type OfferStatusEntry struct {
	Status    OfferStatus `json:"status" bson:"status"`
	ChangedBy string      `json:"changedBy" bson:"changedBy"`
	ChangedAt time.Time   `json:"changedAt" bson:"changedAt"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// CandidateData datos del candidato; los importes son anuales en la moneda de la empresa.
type CandidateData struct {
	CandidateName    string           `json:"candidate_name" bson:"candidate_name"`
	CandidateEmail   string           `json:"candidate_email" bson:"candidate_email"`
	Designation      string           `json:"designation" bson:"designation"`
	Department       string           `json:"department" bson:"department"`
	BaseSalary       decimal.Decimal  `json:"base_salary" bson:"base_salary"`
	TotalCTC         decimal.Decimal  `json:"total_ctc" bson:"total_ctc"`
	HRA              *decimal.Decimal `json:"hra,omitempty" bson:"hra,omitempty"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance,omitempty" bson:"special_allowance,omitempty"`
	StatutoryBonus   *decimal.Decimal `json:"statutory_bonus,omitempty" bson:"statutory_bonus,omitempty"`
	JoiningDate      *time.Time       `json:"joining_date,omitempty" bson:"joining_date,omitempty"`
}

// TemplateData expone los datos del candidato con las claves de placeholder.
func (d CandidateData) TemplateData() map[string]string {
	data := map[string]string{
		"candidate_name":  d.CandidateName,
		"candidate_email": d.CandidateEmail,
		"designation":     d.Designation,
		"department":      d.Department,
		"base_salary":     d.BaseSalary.StringFixed(2),
		"total_ctc":       d.TotalCTC.StringFixed(2),
	}
	optional := map[string]*decimal.Decimal{
		"hra":               d.HRA,
		"special_allowance": d.SpecialAllowance,
		"statutory_bonus":   d.StatutoryBonus,
	}
	for k, v := range optional {
		if v != nil {
			data[k] = v.StringFixed(2)
		}
	}
	if d.JoiningDate != nil {
		data["joining_date"] = d.JoiningDate.Format("2006-01-02")
	}
	return data
}

// SetStatus cambia el estado y deja constancia en el historial.
func (o *Offer) SetStatus(status OfferStatus, by, notes string, at time.Time) {
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, OfferStatusEntry{
		Status: status, ChangedBy: by, ChangedAt: at, Notes: notes,
	})
	o.UpdatedAt = at
}
