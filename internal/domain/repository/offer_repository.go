package repository

import (
	"context"
	"time"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// OfferFilter criterios de listado. Campos vacíos no filtran.
type OfferFilter struct {
	Organisation string
	CreatedBy    string
	Status       entity.OfferStatus
}

// OfferStatsQuery rango [From, To] sobre createdAt para la analítica.
type OfferStatsQuery struct {
	Organisation string
	CreatedBy    string
	From         time.Time
	To           time.Time
}

// OfferRepository define el puerto de persistencia para Offer.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	// CreateMany inserta todas las ofertas en una sola operación.
	CreateMany(ctx context.Context, offers []*entity.Offer) error
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	List(ctx context.Context, filter OfferFilter) ([]*entity.Offer, error)
	Update(ctx context.Context, offer *entity.Offer) error
	// CountByStatus agrupa por estado las ofertas creadas en el rango.
	CountByStatus(ctx context.Context, q OfferStatsQuery) (map[entity.OfferStatus]int64, error)
}
