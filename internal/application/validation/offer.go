package validation

import (
	"strings"
	"time"

	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// MaxBulkCandidates límite de candidatos por generación masiva.
const MaxBulkCandidates = 100

// MaxEmailSubjectLength límite del asunto del email de la oferta.
const MaxEmailSubjectLength = 200

var requiredCandidateFields = []string{
	"candidate_name", "candidate_email", "designation", "department", "base_salary", "total_ctc",
}

var optionalAmountFields = []struct{ key, label string }{
	{"hra", "HRA"},
	{"special_allowance", "Special allowance"},
	{"statutory_bonus", "Statutory bonus"},
}

// OfferGeneration valida el cuerpo de POST /offers/generate.
func OfferGeneration(body Payload, now time.Time) error {
	if IsBlank(body["templateId"]) {
		return domain.Invalid("Template ID is required")
	}
	raw, ok := body["candidateData"]
	if !ok || raw == nil {
		return domain.Invalid("Candidate data is required")
	}
	cd, ok := raw.(map[string]interface{})
	if !ok {
		return domain.Invalid("Candidate data must be an object")
	}
	if msg := checkCandidate(cd, now); msg != "" {
		return domain.Invalid("%s", msg)
	}
	return nil
}

// BulkOfferGeneration valida el cuerpo de POST /offers/bulk-generate. Los errores de un
// candidato llevan su posición (1-based).
func BulkOfferGeneration(body Payload, now time.Time) error {
	if IsBlank(body["templateId"]) {
		return domain.Invalid("Template ID is required")
	}
	raw, ok := body["candidates"]
	if !ok || raw == nil {
		return domain.Invalid("Candidates array is required")
	}
	list, ok := raw.([]interface{})
	if !ok {
		return domain.Invalid("Candidates must be an array")
	}
	if len(list) == 0 {
		return domain.Invalid("Candidates array cannot be empty")
	}
	if len(list) > MaxBulkCandidates {
		return domain.Invalid("Maximum %d candidates allowed per bulk operation", MaxBulkCandidates)
	}
	for i, item := range list {
		cd, ok := item.(map[string]interface{})
		if !ok {
			return domain.Invalid("Candidate %d: candidate data must be an object", i+1)
		}
		if msg := checkCandidate(cd, now); msg != "" {
			return domain.Invalid("Candidate %d: %s", i+1, msg)
		}
	}
	return nil
}

// checkCandidate devuelve el mensaje de la primera regla incumplida o "".
func checkCandidate(cd map[string]interface{}, now time.Time) string {
	var missing []string
	for _, f := range requiredCandidateFields {
		if IsBlank(cd[f]) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return "Missing required candidate fields: " + strings.Join(missing, ", ")
	}

	email, _ := cd["candidate_email"].(string)
	if !ValidEmail(email) {
		return "Invalid candidate email format"
	}

	base, ok := ToNumber(cd["base_salary"])
	if !ok || base <= 0 {
		return "Base salary must be a positive number"
	}
	ctc, ok := ToNumber(cd["total_ctc"])
	if !ok || ctc <= 0 {
		return "Total CTC must be a positive number"
	}
	if base > ctc {
		return "Base salary cannot exceed total CTC"
	}

	for _, f := range optionalAmountFields {
		v, present := cd[f.key]
		if !present || v == nil {
			continue
		}
		n, ok := ToNumber(v)
		if !ok || n < 0 {
			return f.label + " must be a non-negative number"
		}
	}

	if v, present := cd["joining_date"]; present && !IsBlank(v) {
		d, ok := ParseDate(v)
		if !ok {
			return "Invalid joining date format"
		}
		if startOfDay(d).Before(startOfDay(now)) {
			return "Joining date cannot be in the past"
		}
	}
	return ""
}

// OfferStatusUpdate valida el cuerpo de PATCH /offers/:id/status.
func OfferStatusUpdate(body Payload) error {
	s, _ := body["status"].(string)
	if !entity.OfferStatus(s).Valid() {
		names := make([]string, len(entity.OfferStatuses))
		for i, st := range entity.OfferStatuses {
			names[i] = string(st)
		}
		return domain.Invalid("Invalid status. Must be one of: %s", strings.Join(names, ", "))
	}
	return nil
}

// OfferSending valida el cuerpo de POST /offers/:id/send.
func OfferSending(body Payload) error {
	if IsBlank(body["emailSubject"]) && IsBlank(body["emailBody"]) {
		return domain.Invalid("Email subject or body is required")
	}
	if subject, ok := body["emailSubject"].(string); ok && runeLen(subject) > MaxEmailSubjectLength {
		return domain.Invalid("Email subject cannot exceed %d characters", MaxEmailSubjectLength)
	}
	return nil
}

// OfferDownload valida el query param format (opcional): pdf | word, sin distinguir mayúsculas.
func OfferDownload(format string) error {
	if format == "" {
		return nil
	}
	switch strings.ToLower(format) {
	case "pdf", "word":
		return nil
	}
	return domain.Invalid("Invalid format. Must be 'pdf' or 'word'")
}

// AnalyticsDateRange valida startDate/endDate (opcionales) del reporte de ofertas.
func AnalyticsDateRange(startDate, endDate string, now time.Time) error {
	var start, end time.Time
	var ok bool
	if startDate != "" {
		if start, ok = ParseDate(startDate); !ok {
			return domain.Invalid("Invalid start date format")
		}
	}
	if endDate != "" {
		if end, ok = ParseDate(endDate); !ok {
			return domain.Invalid("Invalid end date format")
		}
	}
	if startDate != "" && endDate != "" && !start.Before(end) {
		return domain.Invalid("Start date must be before end date")
	}
	if startDate != "" && start.Before(now.AddDate(-1, 0, 0)) {
		return domain.Invalid("Start date cannot be more than 1 year ago")
	}
	if startDate != "" && start.After(now) {
		return domain.Invalid("Start date cannot be in the future")
	}
	return nil
}
