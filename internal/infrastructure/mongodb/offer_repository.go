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

// OfferRepository implementa repository.OfferRepository.
type OfferRepository struct {
	c *mongo.Collection
}

var _ repository.OfferRepository = (*OfferRepository)(nil)

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{c: db.Collection(collOffers)}
}

func (r *OfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	_, err := r.c.InsertOne(ctx, offer)
	return wrap("insertar offer", err)
}

// CreateMany inserta en un único InsertMany ordenado.
func (r *OfferRepository) CreateMany(ctx context.Context, offers []*entity.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	docs := make([]interface{}, len(offers))
	for i, o := range offers {
		docs[i] = o
	}
	_, err := r.c.InsertMany(ctx, docs)
	return wrap("insertar offers", err)
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	var offer entity.Offer
	if err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&offer); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, wrap("buscar offer", err)
	}
	return &offer, nil
}

func (r *OfferRepository) List(ctx context.Context, f repository.OfferFilter) ([]*entity.Offer, error) {
	filter := bson.M{}
	if f.Organisation != "" {
		filter["organisation"] = f.Organisation
	}
	if f.CreatedBy != "" {
		filter["createdBy"] = f.CreatedBy
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	cur, err := r.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, wrap("listar offers", err)
	}
	var list []*entity.Offer
	if err := cur.All(ctx, &list); err != nil {
		return nil, wrap("decodificar offers", err)
	}
	return list, nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *entity.Offer) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": offer.ID}, offer)
	if err != nil {
		return wrap("actualizar offer", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus agrupa en el servidor: $match por organisation/rango y $group por status.
func (r *OfferRepository) CountByStatus(ctx context.Context, q repository.OfferStatsQuery) (map[entity.OfferStatus]int64, error) {
	match := bson.M{
		"organisation": q.Organisation,
		"createdAt":    bson.M{"$gte": q.From, "$lte": q.To},
	}
	if q.CreatedBy != "" {
		match["createdBy"] = q.CreatedBy
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrap("agregar offers", err)
	}
	var rows []struct {
		Status entity.OfferStatus `bson:"_id"`
		Count  int64              `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, wrap("decodificar conteo", err)
	}
	counts := make(map[entity.OfferStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
