package ports

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// OfferDocumentRenderer define el puerto de salida que convierte una oferta ya renderizada
// (placeholders sustituidos) en un archivo descargable. La aplicación sólo conoce este
// contrato; el adaptador vive en infrastructure/pdf.
type OfferDocumentRenderer interface {
	// RenderOfferPDF devuelve los bytes del PDF de la carta de oferta.
	RenderOfferPDF(ctx context.Context, offer *entity.Offer) ([]byte, error)
}
