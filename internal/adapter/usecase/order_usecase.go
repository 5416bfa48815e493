package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// maxNumberAttempts bounds the order-number retry loop. The number carries
// a 4-digit random suffix, so collisions within a month are possible and
// resolved by regenerating against the storage uniqueness constraint.
const maxNumberAttempts = 5

// OrderUseCase implements the order lifecycle: gated creation with a
// frozen pricing snapshot, free status changes with one-shot commission on
// close, hard deletion and the bulk expiry transition used by the sweep.
type OrderUseCase struct {
	orders port.OrderRepository
	offers port.OfferRepository
	policy domain.CommissionPolicy

	now func() time.Time
}

// NewOrderUseCase creates a new usecase. The commission policy defaults to
// the flat low tier when nil.
func NewOrderUseCase(orders port.OrderRepository, offers port.OfferRepository, policy domain.CommissionPolicy) *OrderUseCase {
	if policy == nil {
		policy = domain.FlatLowCommission
	}
	return &OrderUseCase{orders: orders, offers: offers, policy: policy, now: time.Now}
}

// Create runs the validation gate against the referenced offer, prices the
// request, snapshots the offer's pricing fields and stores the order with
// status new. A gate failure aborts with no partial write.
func (u *OrderUseCase) Create(ctx context.Context, offerID, buyerID uuid.UUID, req domain.OrderRequest) (*domain.Order, error) {
	offer, err := u.offers.Find(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	total, err := domain.ValidateOrderRequest(offer, req)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	order := &domain.Order{
		ID:            uuid.New(),
		OfferID:       offer.ID,
		BuyerID:       buyerID,
		PublisherID:   offer.PublisherID,
		PreferredFrom: req.PreferredFrom,
		PreferredTo:   req.PreferredTo,
		Quantity:      req.Quantity,
		Impressions:   req.Impressions,
		Note:          req.Note,
		TotalPrice:    total,
		Status:        domain.OrderStatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	order.SnapshotPricing(offer)

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		order.Number = domain.NewOrderNumber(now)
		err = u.orders.Create(ctx, order)
		if !errors.Is(err, domain.ErrOrderNumberTaken) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Find returns the order or domain.ErrOrderNotFound.
func (u *OrderUseCase) Find(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := u.orders.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// ChangeStatus sets any target status; no transition graph is enforced.
// Moving into closed from another status computes the commission, which
// happens at most once per order.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Reason: domain.ReasonStatusInvalid, Message: fmt.Sprintf("unknown order status %q", status)}
	}
	order, err := u.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == domain.OrderStatusClosed && order.Status != domain.OrderStatusClosed {
		order.ApplyCommission(u.policy)
	}
	order.Status = status
	order.UpdatedAt = u.now().UTC()
	if err = u.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order record entirely and reports whether a record
// existed. There are no cascading effects.
func (u *OrderUseCase) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return u.orders.Delete(ctx, id)
}

// CloseExpired closes every open order whose preferredTo lies before now,
// computing commissions on the way. Records that fail to update are
// skipped; the next sweep tick picks them up again.
func (u *OrderUseCase) CloseExpired(ctx context.Context, now time.Time) (int, error) {
	ended, err := u.orders.ListEndingBefore(ctx, now, domain.OrderStatusClosed)
	if err != nil {
		return 0, err
	}
	var (
		closed int
		errs   []error
	)
	for i := range ended {
		order := &ended[i]
		order.ApplyCommission(u.policy)
		order.Status = domain.OrderStatusClosed
		order.UpdatedAt = u.now().UTC()
		if err = u.orders.Update(ctx, order); err != nil {
			errs = append(errs, fmt.Errorf("close order %s: %w", order.ID, err))
			continue
		}
		closed++
	}
	return closed, errors.Join(errs...)
}
