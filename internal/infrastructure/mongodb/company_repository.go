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

// CompanyRepository implementa repository.CompanyRepository.
type CompanyRepository struct {
	c *mongo.Collection
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{c: db.Collection(collCompanies)}
}

func (r *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.c.InsertOne(ctx, company)
	return wrap("insertar company", err)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.findOne(ctx, bson.M{"_id": id}, nil)
}

// FindActiveByOwner devuelve la más reciente si, por la carrera conocida, hubiera varias.
func (r *CompanyRepository) FindActiveByOwner(ctx context.Context, organisation, createdBy string) (*entity.Company, error) {
	filter := bson.M{"organisation": organisation, "createdBy": createdBy, "isActive": true}
	return r.findOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
}

func (r *CompanyRepository) ListActiveByCreator(ctx context.Context, createdBy string) ([]*entity.Company, error) {
	cur, err := r.c.Find(ctx,
		bson.M{"createdBy": createdBy, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, wrap("listar companies", err)
	}
	var list []*entity.Company
	if err := cur.All(ctx, &list); err != nil {
		return nil, wrap("decodificar companies", err)
	}
	return list, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *entity.Company) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": company.ID}, company)
	if err != nil {
		return wrap("actualizar company", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*entity.Company, error) {
	var company entity.Company
	var err error
	if opts != nil {
		err = r.c.FindOne(ctx, filter, opts).Decode(&company)
	} else {
		err = r.c.FindOne(ctx, filter).Decode(&company)
	}
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, wrap("buscar company", err)
	}
	return &company, nil
}
