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

// TemplateRepository implementa repository.TemplateRepository.
type TemplateRepository struct {
	c *mongo.Collection
}

var _ repository.TemplateRepository = (*TemplateRepository)(nil)

func NewTemplateRepository(db *mongo.Database) *TemplateRepository {
	return &TemplateRepository{c: db.Collection(collTemplates)}
}

func (r *TemplateRepository) Create(ctx context.Context, tpl *entity.Template) error {
	_, err := r.c.InsertOne(ctx, tpl)
	return wrap("insertar template", err)
}

func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	var tpl entity.Template
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&tpl); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, wrap("buscar template", err)
	}
	return &tpl, nil
}

func (r *TemplateRepository) ListActive(ctx context.Context, f repository.TemplateFilter) ([]*entity.Template, error) {
	filter := bson.M{"organisation": f.Organisation, "isActive": true}
	if f.Department != "" {
		filter["department"] = f.Department
	}
	cur, err := r.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		return nil, wrap("listar templates", err)
	}
	var list []*entity.Template
	if err := cur.All(ctx, &list); err != nil {
		return nil, wrap("decodificar templates", err)
	}
	return list, nil
}

func (r *TemplateRepository) Update(ctx context.Context, tpl *entity.Template) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": tpl.ID}, tpl)
	if err != nil {
		return wrap("actualizar template", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
