package mongodb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/offerdesk-api/internal/domain"
	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
	"github.com/jhoicas/offerdesk-api/pkg/config"
	"github.com/jhoicas/offerdesk-api/pkg/logger"
)

// testDB abre una base efímera en MONGO_TEST_URI; sin la variable el test se omite.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI no definida")
	}
	ctx := context.Background()
	client, err := Connect(ctx, config.MongoConfig{URI: uri}, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	db := client.Database(fmt.Sprintf("offerdesk_test_%d", time.Now().UnixNano()))
	require.NoError(t, EnsureIndexes(ctx, db))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestOrganisationRepository(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewOrganisationRepository(db)

	org := &entity.Organisation{
		ID: uuid.NewString(), OrganisationName: "Acme", OrganisationID: uuid.NewString(),
		PaymentStatus: entity.PaymentPending, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, org))

	dup := *org
	dup.ID = uuid.NewString()
	dup.OrganisationID = uuid.NewString()
	assert.True(t, errors.Is(repo.Create(ctx, &dup), domain.ErrDuplicate), "organisationName único")

	got, err := repo.GetByName(ctx, "Acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, org.ID, got.ID)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	org.PaymentStatus = entity.PaymentPaid
	require.NoError(t, repo.Update(ctx, org))
	assert.True(t, errors.Is(repo.Update(ctx, &entity.Organisation{ID: "nope", OrganisationID: "x", OrganisationName: "y"}), domain.ErrNotFound))

	ok, err := repo.Delete(ctx, org.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Delete(ctx, org.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompanyRepository_ActivaPorDueño(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewCompanyRepository(db)

	c := &entity.Company{ID: "c1", Organisation: "org-1", CreatedBy: "u1", IsActive: true,
		Profile: entity.CompanyProfile{CompanyName: "Acme"}}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.FindActiveByOwner(ctx, "org-1", "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Profile.CompanyName)

	c.IsActive = false
	require.NoError(t, repo.Update(ctx, c))
	got, err = repo.FindActiveByOwner(ctx, "org-1", "u1")
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.ListActiveByCreator(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOfferRepository_CountByStatus(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewOfferRepository(db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	mk := func(id string, s entity.OfferStatus, at time.Time) *entity.Offer {
		return &entity.Offer{ID: id, Organisation: "org-1", CreatedBy: "u1", Status: s, CreatedAt: at,
			CandidateData: entity.CandidateData{BaseSalary: decimal.NewFromInt(1), TotalCTC: decimal.NewFromInt(2)}}
	}
	require.NoError(t, repo.CreateMany(ctx, []*entity.Offer{
		mk("o1", entity.OfferAccepted, now),
		mk("o2", entity.OfferAccepted, now),
		mk("o3", entity.OfferDraft, now),
		mk("o4", entity.OfferDraft, now.AddDate(0, -2, 0)),
	}))

	counts, err := repo.CountByStatus(ctx, repository.OfferStatsQuery{Organisation: "org-1", From: now.Add(-time.Hour), To: now.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[entity.OfferAccepted])
	assert.Equal(t, int64(1), counts[entity.OfferDraft])

	drafts, err := repo.List(ctx, repository.OfferFilter{Organisation: "org-1", Status: entity.OfferDraft})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, got.CandidateData.TotalCTC.Equal(decimal.NewFromInt(2)))
}
