package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

// OrganisationRepository implementa repository.OrganisationRepository.
type OrganisationRepository struct {
	c *mongo.Collection
}

var _ repository.OrganisationRepository = (*OrganisationRepository)(nil)

func NewOrganisationRepository(db *mongo.Database) *OrganisationRepository {
	return &OrganisationRepository{c: db.Collection(collOrganisations)}
}

func (r *OrganisationRepository) Create(ctx context.Context, org *entity.Organisation) error {
	_, err := r.c.InsertOne(ctx, org)
	return wrap("insertar organisation", err)
}

func (r *OrganisationRepository) GetByID(ctx context.Context, id string) (*entity.Organisation, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *OrganisationRepository) GetByName(ctx context.Context, name string) (*entity.Organisation, error) {
	return r.findOne(ctx, bson.M{"organisationName": name})
}

func (r *OrganisationRepository) List(ctx context.Context) ([]*entity.Organisation, error) {
	cur, err := r.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, wrap("listar organisations", err)
	}
	var list []*entity.Organisation
	if err := cur.All(ctx, &list); err != nil {
		return nil, wrap("decodificar organisations", err)
	}
	return list, nil
}

func (r *OrganisationRepository) Update(ctx context.Context, org *entity.Organisation) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": org.ID}, org)
	if err != nil {
		return wrap("actualizar organisation", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrganisationRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, wrap("borrar organisation", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *OrganisationRepository) findOne(ctx context.Context, filter bson.M) (*entity.Organisation, error) {
	var org entity.Organisation
	if err := r.c.FindOne(ctx, filter).Decode(&org); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, wrap("buscar organisation", err)
	}
	return &org, nil
}
