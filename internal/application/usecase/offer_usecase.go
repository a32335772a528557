package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/offerdesk-api/internal/application/dto"
	"github.com/jhoicas/offerdesk-api/internal/application/ports"
	"github.com/jhoicas/offerdesk-api/internal/application/validation"
	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

// Ventana por defecto de la analítica cuando no se indica startDate.
const defaultAnalyticsWindow = 30 * 24 * time.Hour

var documentContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"word": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var documentExtensions = map[string]string{"pdf": "pdf", "word": "docx"}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// OfferUseCase genera ofertas a partir de plantillas y gestiona su ciclo de vida.
// El envío del email y la conversión a Word son externos: aquí sólo se registran.
// renderer puede ser nil; entonces la descarga en pdf devuelve sólo el documento.
type OfferUseCase struct {
	offers    repository.OfferRepository
	templates repository.TemplateRepository
	renderer  ports.OfferDocumentRenderer
}

func NewOfferUseCase(offers repository.OfferRepository, templates repository.TemplateRepository, renderer ports.OfferDocumentRenderer) *OfferUseCase {
	return &OfferUseCase{offers: offers, templates: templates, renderer: renderer}
}

// Generate crea una oferta en borrador con el contenido de la plantilla ya renderizado.
func (uc *OfferUseCase) Generate(ctx context.Context, p entity.Principal, in dto.GenerateOfferRequest) (*dto.OfferResponse, error) {
	tpl, err := activeTemplate(ctx, uc.templates, p, in.TemplateID)
	if err != nil {
		return nil, err
	}
	offer, err := newOffer(tpl, p, in.CandidateData, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	return entityToOfferResponse(offer), nil
}

// BulkGenerate crea una oferta por candidato y las inserta juntas.
func (uc *OfferUseCase) BulkGenerate(ctx context.Context, p entity.Principal, in dto.BulkGenerateOfferRequest) (*dto.BulkGenerateOfferResponse, error) {
	tpl, err := activeTemplate(ctx, uc.templates, p, in.TemplateID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	offers := make([]*entity.Offer, 0, len(in.Candidates))
	for i, c := range in.Candidates {
		offer, err := newOffer(tpl, p, c, now)
		if err != nil {
			return nil, domain.Invalid("Candidate %d: %s", i+1, domain.Message(err))
		}
		offers = append(offers, offer)
	}
	if err := uc.offers.CreateMany(ctx, offers); err != nil {
		return nil, err
	}
	out := &dto.BulkGenerateOfferResponse{Count: len(offers), Offers: make([]dto.OfferResponse, 0, len(offers))}
	for _, o := range offers {
		out.Offers = append(out.Offers, *entityToOfferResponse(o))
	}
	return out, nil
}

// List ofertas de la organisation; un User sólo ve las suyas.
func (uc *OfferUseCase) List(ctx context.Context, p entity.Principal, status string) ([]dto.OfferResponse, error) {
	filter := repository.OfferFilter{Organisation: p.Organisation}
	if p.Role == entity.RoleUser {
		filter.CreatedBy = p.ID
	}
	if status != "" {
		if err := validation.OfferStatusUpdate(validation.Payload{"status": status}); err != nil {
			return nil, err
		}
		filter.Status = entity.OfferStatus(status)
	}
	list, err := uc.offers.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *entityToOfferResponse(o))
	}
	return out, nil
}

func (uc *OfferUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.OfferResponse, error) {
	offer, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return entityToOfferResponse(offer), nil
}

// UpdateStatus cambia el estado y lo anota en el historial.
func (uc *OfferUseCase) UpdateStatus(ctx context.Context, p entity.Principal, id string, in dto.UpdateOfferStatusRequest) (*dto.OfferResponse, error) {
	offer, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	offer.SetStatus(entity.OfferStatus(in.Status), p.ID, strings.TrimSpace(in.Notes), time.Now().UTC())
	if err := uc.save(ctx, offer); err != nil {
		return nil, err
	}
	return entityToOfferResponse(offer), nil
}

// Send registra asunto y cuerpo del email y marca la oferta como enviada.
func (uc *OfferUseCase) Send(ctx context.Context, p entity.Principal, id string, in dto.SendOfferRequest) (*dto.OfferResponse, error) {
	offer, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	data := offer.CandidateData.TemplateData()
	offer.EmailSubject = entity.RenderText(strings.TrimSpace(in.EmailSubject), data)
	offer.EmailBody = entity.RenderText(in.EmailBody, data)
	offer.SentAt = &now
	offer.SetStatus(entity.OfferSent, p.ID, "sent to "+offer.CandidateData.CandidateEmail, now)
	if err := uc.save(ctx, offer); err != nil {
		return nil, err
	}
	return entityToOfferResponse(offer), nil
}

// Download prepara el documento de la oferta; format vacío es pdf. En pdf, si hay renderer,
// Data lleva el archivo ya generado.
func (uc *OfferUseCase) Download(ctx context.Context, p entity.Principal, id, format string) (*dto.OfferDocumentResponse, error) {
	if err := validation.OfferDownload(format); err != nil {
		return nil, err
	}
	offer, err := uc.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	format = strings.ToLower(format)
	if format == "" {
		format = "pdf"
	}
	slug := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(offer.CandidateData.CandidateName), "-"), "-")
	if slug == "" {
		slug = "candidate"
	}
	out := &dto.OfferDocumentResponse{
		OfferID:       offer.ID,
		FileName:      fmt.Sprintf("offer-%s-%s.%s", slug, shortID(offer.ID), documentExtensions[format]),
		Format:        format,
		ContentType:   documentContentTypes[format],
		CandidateName: offer.CandidateData.CandidateName,
		Content:       offer.Content,
	}
	if format == "pdf" && uc.renderer != nil {
		data, err := uc.renderer.RenderOfferPDF(ctx, offer)
		if err != nil {
			return nil, fmt.Errorf("render offer %s: %w", offer.ID, err)
		}
		out.Data = data
	}
	return out, nil
}

// Analytics cuenta por estado las ofertas creadas en [startDate, endDate]. Sin fechas cubre
// los últimos 30 días. Una fecha fin sin hora incluye el día completo.
func (uc *OfferUseCase) Analytics(ctx context.Context, p entity.Principal, startDate, endDate string) (*dto.OfferAnalyticsResponse, error) {
	now := time.Now().UTC()
	if err := validation.AnalyticsDateRange(startDate, endDate, now); err != nil {
		return nil, err
	}
	to := now
	if endDate != "" {
		to, _ = validation.ParseDate(endDate)
		if len(strings.TrimSpace(endDate)) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
	}
	from := to.Add(-defaultAnalyticsWindow)
	if startDate != "" {
		from, _ = validation.ParseDate(startDate)
	}

	q := repository.OfferStatsQuery{Organisation: p.Organisation, From: from.UTC(), To: to.UTC()}
	if p.Role == entity.RoleUser {
		q.CreatedBy = p.ID
	}
	counts, err := uc.offers.CountByStatus(ctx, q)
	if err != nil {
		return nil, err
	}

	out := &dto.OfferAnalyticsResponse{From: q.From, To: q.To, ByStatus: make(map[string]int64, len(entity.OfferStatuses))}
	for _, s := range entity.OfferStatuses {
		out.ByStatus[string(s)] = counts[s]
		out.Total += counts[s]
	}
	if answered := counts[entity.OfferAccepted] + counts[entity.OfferRejected]; answered > 0 {
		out.AcceptanceRate = float64(counts[entity.OfferAccepted]) / float64(answered)
	}
	return out, nil
}

// load exige que la oferta sea de la organisation del usuario (salvo Superadmin) y que el
// usuario sea su creador o tenga rol elevado.
func (uc *OfferUseCase) load(ctx context.Context, p entity.Principal, id string) (*entity.Offer, error) {
	offer, err := uc.offers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, offerNotFound()
	}
	if offer.Organisation != p.Organisation && p.Role != entity.RoleSuperadmin {
		return nil, domain.Errorf(domain.ErrForbidden, "Offer belongs to another organisation")
	}
	if !p.CanAccess(offer.CreatedBy) {
		return nil, domain.Errorf(domain.ErrForbidden, "Access denied")
	}
	return offer, nil
}

func (uc *OfferUseCase) save(ctx context.Context, offer *entity.Offer) error {
	if err := uc.offers.Update(ctx, offer); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return offerNotFound()
		}
		return err
	}
	return nil
}

func newOffer(tpl *entity.Template, p entity.Principal, in dto.CandidateInput, now time.Time) (*entity.Offer, error) {
	cd, err := candidateFromInput(in)
	if err != nil {
		return nil, err
	}
	offer := &entity.Offer{
		ID:            uuid.New().String(),
		TemplateID:    tpl.ID,
		Organisation:  p.Organisation,
		CandidateData: cd,
		Content:       tpl.Content.Render(cd.TemplateData()),
		CreatedBy:     p.ID,
		CreatedAt:     now,
	}
	offer.SetStatus(entity.OfferDraft, p.ID, "generated from template "+tpl.Name, now)
	return offer, nil
}

func candidateFromInput(in dto.CandidateInput) (entity.CandidateData, error) {
	cd := entity.CandidateData{
		CandidateName:    strings.TrimSpace(in.CandidateName),
		CandidateEmail:   strings.ToLower(strings.TrimSpace(in.CandidateEmail)),
		Designation:      strings.TrimSpace(in.Designation),
		Department:       strings.TrimSpace(in.Department),
		BaseSalary:       in.BaseSalary,
		TotalCTC:         in.TotalCTC,
		HRA:              in.HRA,
		SpecialAllowance: in.SpecialAllowance,
		StatutoryBonus:   in.StatutoryBonus,
	}
	if strings.TrimSpace(in.JoiningDate) != "" {
		d, ok := validation.ParseDate(in.JoiningDate)
		if !ok {
			return cd, domain.Invalid("Invalid joining date format")
		}
		d = d.UTC()
		cd.JoiningDate = &d
	}
	return cd, nil
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func offerNotFound() error {
	return domain.Errorf(domain.ErrNotFound, "Offer not found")
}

func entityToOfferResponse(o *entity.Offer) *dto.OfferResponse {
	history := o.StatusHistory
	if history == nil {
		history = []entity.OfferStatusEntry{}
	}
	return &dto.OfferResponse{
		ID:            o.ID,
		TemplateID:    o.TemplateID,
		Organisation:  o.Organisation,
		CandidateData: o.CandidateData,
		Status:        string(o.Status),
		Content:       o.Content,
		EmailSubject:  o.EmailSubject,
		EmailBody:     o.EmailBody,
		SentAt:        o.SentAt,
		StatusHistory: history,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
