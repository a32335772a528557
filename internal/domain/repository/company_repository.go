package repository

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// No hay borrado físico: la baja es IsActive=false vía Update.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// FindActiveByOwner devuelve la empresa activa de (organisation, createdBy) o nil.
	FindActiveByOwner(ctx context.Context, organisation, createdBy string) (*entity.Company, error)
	ListActiveByCreator(ctx context.Context, createdBy string) ([]*entity.Company, error)
	// Update reemplaza el documento; domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, company *entity.Company) error
}
