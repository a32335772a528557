package repository

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
)

// UserRepository acceso de sólo lectura a los usuarios del servicio de autenticación.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
