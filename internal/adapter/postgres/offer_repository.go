package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mesa-market/internal/core/domain"
)

// DB is the subset of pgxpool.Pool used by the repositories. Declaring it
// here lets tests substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// OfferRepository implements port.OfferRepository on PostgreSQL.
type OfferRepository struct {
	db DB
}

// NewOfferRepository returns a new repository instance.
func NewOfferRepository(db DB) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `id, publisher_id, title, pricing_model, unit_price, cpt_rate,
        min_order_value, discount_percent, valid_from, valid_to, last_order_day,
        deadline_assets, status, created_at, updated_at`

func scanOffer(row pgx.Row) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(
		&o.ID,
		&o.PublisherID,
		&o.Title,
		&o.PricingModel,
		&o.UnitPrice,
		&o.CPTRate,
		&o.MinOrderValue,
		&o.DiscountPercent,
		&o.ValidFrom,
		&o.ValidTo,
		&o.LastOrderDay,
		&o.DeadlineAssets,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// Create inserts a new offer.
func (r *OfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	_, err := r.db.Exec(ctx, `INSERT INTO offers (`+offerColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		offer.ID, offer.PublisherID, offer.Title, offer.PricingModel,
		offer.UnitPrice, offer.CPTRate, offer.MinOrderValue, offer.DiscountPercent,
		offer.ValidFrom, offer.ValidTo, offer.LastOrderDay, offer.DeadlineAssets,
		offer.Status, offer.CreatedAt, offer.UpdatedAt)
	return err
}

// Find returns the offer by id, or nil when no record exists.
func (r *OfferRepository) Find(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	o, err := scanOffer(r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Update overwrites all mutable columns of the offer.
func (r *OfferRepository) Update(ctx context.Context, offer *domain.Offer) error {
	_, err := r.db.Exec(ctx, `UPDATE offers SET
        title = $2, pricing_model = $3, unit_price = $4, cpt_rate = $5,
        min_order_value = $6, discount_percent = $7, valid_from = $8, valid_to = $9,
        last_order_day = $10, deadline_assets = $11, status = $12, updated_at = $13
        WHERE id = $1`,
		offer.ID, offer.Title, offer.PricingModel, offer.UnitPrice, offer.CPTRate,
		offer.MinOrderValue, offer.DiscountPercent, offer.ValidFrom, offer.ValidTo,
		offer.LastOrderDay, offer.DeadlineAssets, offer.Status, offer.UpdatedAt)
	return err
}

// Delete removes the offer and reports whether a record existed.
func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListPublishedExpiredBefore returns published offers with validTo before
// the cutoff.
func (r *OfferRepository) ListPublishedExpiredBefore(ctx context.Context, cutoff time.Time) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM offers
        WHERE status = $1 AND valid_to < $2`, domain.OfferStatusPublished, cutoff)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Offer, error) {
		return scanOffer(row)
	})
}
