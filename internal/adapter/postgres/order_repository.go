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

// OrderRepository implements port.OrderRepository on PostgreSQL. The
// orders.number column carries a unique constraint; Create translates a
// violation of it into domain.ErrOrderNumberTaken so the usecase can retry
// with a regenerated number.
type OrderRepository struct {
	db DB
}

// NewOrderRepository returns a new repository instance.
func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, number, offer_id, buyer_id, publisher_id, pricing_model,
        unit_price, cpt_rate, preferred_from, preferred_to, quantity, impressions,
        note, total_price, commission_rate, commission_amount, status, created_at, updated_at`

func scanOrder(row pgx.Row) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.Number,
		&o.OfferID,
		&o.BuyerID,
		&o.PublisherID,
		&o.PricingModel,
		&o.UnitPrice,
		&o.CPTRate,
		&o.PreferredFrom,
		&o.PreferredTo,
		&o.Quantity,
		&o.Impressions,
		&o.Note,
		&o.TotalPrice,
		&o.CommissionRate,
		&o.CommissionAmount,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// Create inserts a new order. A duplicate order number yields
// domain.ErrOrderNumberTaken.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	_, err := r.db.Exec(ctx, `INSERT INTO orders (`+orderColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		order.ID, order.Number, order.OfferID, order.BuyerID, order.PublisherID,
		order.PricingModel, order.UnitPrice, order.CPTRate,
		order.PreferredFrom, order.PreferredTo, order.Quantity, order.Impressions,
		order.Note, order.TotalPrice, order.CommissionRate, order.CommissionAmount,
		order.Status, order.CreatedAt, order.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrOrderNumberTaken
	}
	return err
}

// Find returns the order by id, or nil when no record exists.
func (r *OrderRepository) Find(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Update overwrites the mutable columns of the order. The pricing snapshot
// and parties are immutable after creation and are not written here.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	_, err := r.db.Exec(ctx, `UPDATE orders SET
        status = $2, commission_rate = $3, commission_amount = $4, updated_at = $5
        WHERE id = $1`,
		order.ID, order.Status, order.CommissionRate, order.CommissionAmount, order.UpdatedAt)
	return err
}

// Delete removes the order and reports whether a record existed.
func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListEndingBefore returns orders whose preferredTo is before the cutoff,
// excluding the given status.
func (r *OrderRepository) ListEndingBefore(ctx context.Context, cutoff time.Time, excluding domain.OrderStatus) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders
        WHERE preferred_to < $1 AND status <> $2`, cutoff, excluding)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		return scanOrder(row)
	})
}
