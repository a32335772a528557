package postgres

import (
	"context"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de users; la tabla la alimenta el servicio de autenticación.
type UserRepo struct {
	t docTable[entity.User]
}

func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{t: docTable[entity.User]{db: db, table: "users"}}
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.t.get(ctx, "get user", "id = $1", id)
}
