package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/offerdesk-api/internal/domain/entity"
	"github.com/jhoicas/offerdesk-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

const insertOffer = `
	INSERT INTO offers (id, organisation, created_by, status, total_ctc, doc, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// OfferRepo guarda la oferta como documento más las columnas que usan listado y analítica.
// total_ctc es NUMERIC y viaja como decimal.Decimal gracias al codec registrado en el pool.
type OfferRepo struct {
	t docTable[entity.Offer]
}

func NewOfferRepository(db DB) *OfferRepo {
	return &OfferRepo{t: docTable[entity.Offer]{db: db, table: "offers"}}
}

func (r *OfferRepo) Create(ctx context.Context, o *entity.Offer) error {
	_, err := r.t.db.Exec(ctx, insertOffer, offerArgs(o)...)
	return wrap("insert offer", err)
}

// CreateMany inserta todas en una transacción: o entran todas o ninguna.
func (r *OfferRepo) CreateMany(ctx context.Context, offers []*entity.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	err := pgx.BeginFunc(ctx, r.t.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, o := range offers {
			batch.Queue(insertOffer, offerArgs(o)...)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	return wrap("insert offers", err)
}

func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	return r.t.get(ctx, "get offer", "id = $1", id)
}

func (r *OfferRepo) List(ctx context.Context, f repository.OfferFilter) ([]*entity.Offer, error) {
	var conds []string
	var args []any
	add := func(col string, v string) {
		if v == "" {
			return
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("organisation", f.Organisation)
	add("created_by", f.CreatedBy)
	add("status", string(f.Status))
	where := "TRUE"
	if len(conds) > 0 {
		where = strings.Join(conds, " AND ")
	}
	return r.t.list(ctx, "list offers", where, "created_at DESC", args...)
}

func (r *OfferRepo) Update(ctx context.Context, o *entity.Offer) error {
	return r.t.exec(ctx, "update offer", `
		UPDATE offers SET status = $2, total_ctc = $3, doc = $4, updated_at = $5
		WHERE id = $1`,
		o.ID, string(o.Status), o.CandidateData.TotalCTC, o, o.UpdatedAt,
	)
}

func (r *OfferRepo) CountByStatus(ctx context.Context, q repository.OfferStatsQuery) (map[entity.OfferStatus]int64, error) {
	rows, err := r.t.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM offers
		WHERE organisation = $1
		  AND created_at BETWEEN $2 AND $3
		  AND ($4 = '' OR created_by = $4)
		GROUP BY status`,
		q.Organisation, q.From, q.To, q.CreatedBy,
	)
	if err != nil {
		return nil, wrap("count offers", err)
	}
	defer rows.Close()
	counts := make(map[entity.OfferStatus]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, wrap("count offers", err)
		}
		counts[entity.OfferStatus(status)] = n
	}
	return counts, wrap("count offers", rows.Err())
}

func offerArgs(o *entity.Offer) []any {
	return []any{
		o.ID, o.Organisation, o.CreatedBy, string(o.Status), o.CandidateData.TotalCTC,
		o, o.CreatedAt, o.UpdatedAt,
	}
}
