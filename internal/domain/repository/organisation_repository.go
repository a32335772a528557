package repository

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// OrganisationRepository define el puerto de persistencia para Organisation (DIP).
// Las implementaciones viven en infrastructure (mongo, postgres).
// Los Get devuelven (nil, nil) si no existe; Create/Update devuelven domain.ErrDuplicate si
// se viola la unicidad de organisationName u organisationId.
type OrganisationRepository interface {
	Create(ctx context.Context, org *entity.Organisation) error
	GetByID(ctx context.Context, id string) (*entity.Organisation, error)
	GetByName(ctx context.Context, name string) (*entity.Organisation, error)
	List(ctx context.Context) ([]*entity.Organisation, error)
	// Update reemplaza el documento; domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, org *entity.Organisation) error
	// Delete borra físicamente; devuelve false si no había documento.
	Delete(ctx context.Context, id string) (bool, error)
}
