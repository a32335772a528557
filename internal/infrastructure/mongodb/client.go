// Package mongodb implementa los puertos de persistencia sobre MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/offerdesk-api/pkg/config"
	"github.com/jhoicas/offerdesk-api/pkg/logger"
)

// Nombres de colección.
const (
	collOrganisations = "organisations"
	collCompanies     = "companies"
	collUsers         = "users"
	collTemplates     = "templates"
	collOffers        = "offers"
)

const pingTimeout = 5 * time.Second

// Connect abre el cliente con el registro de codecs propio y reintenta con backoff exponencial
// hasta que el servidor responda al ping o se agote maxWait.
func Connect(ctx context.Context, cfg config.MongoConfig, maxWait time.Duration, log *logger.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRegistry(Registry()).
		SetAppName("offerdesk-api")

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = maxWait

	var client *mongo.Client
	err := backoff.RetryNotify(func() error {
		c, err := mongo.Connect(ctx, opts)
		if err != nil {
			return err
		}
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := c.Ping(pctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}
		client = c
		return nil
	}, backoff.WithContext(bo, ctx), func(err error, next time.Duration) {
		log.Warn().Err(err).Dur("retry_in", next).Msg("mongo no disponible, reintentando")
	})
	if err != nil {
		return nil, fmt.Errorf("conectar mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices que usan los repositorios. Es idempotente.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		collOrganisations: {
			{Keys: bson.D{{Key: "organisationName", Value: 1}}, Options: options.Index().SetName("uniq_organisationName").SetUnique(true)},
			{Keys: bson.D{{Key: "organisationId", Value: 1}}, Options: options.Index().SetName("uniq_organisationId").SetUnique(true)},
		},
		collCompanies: {
			// sin unique: la regla de una activa por dueño se aplica en el caso de uso
			{Keys: bson.D{{Key: "organisation", Value: 1}, {Key: "createdBy", Value: 1}, {Key: "isActive", Value: 1}}, Options: options.Index().SetName("idx_organisation_createdBy_isActive")},
			{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "isActive", Value: 1}}, Options: options.Index().SetName("idx_createdBy_isActive")},
		},
		collTemplates: {
			{Keys: bson.D{{Key: "organisation", Value: 1}, {Key: "isActive", Value: 1}, {Key: "department", Value: 1}}, Options: options.Index().SetName("idx_organisation_isActive_department")},
		},
		collOffers: {
			{Keys: bson.D{{Key: "organisation", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_organisation_createdAt")},
			{Keys: bson.D{{Key: "organisation", Value: 1}, {Key: "createdBy", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("idx_organisation_createdBy_status")},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("índices %s: %w", coll, err)
		}
	}
	return nil
}
