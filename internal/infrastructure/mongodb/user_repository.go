package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

// UserRepository lee la colección users que mantiene el servicio de autenticación.
type UserRepository struct {
	c *mongo.Collection
}

var _ repository.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{c: db.Collection(collUsers)}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, wrap("buscar user", err)
	}
	return &u, nil
}
