package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
)

// OrderRepository is the outbound persistence port for orders. Create must
// return domain.ErrOrderNumberTaken when the generated order number
// violates the storage uniqueness constraint, so the caller can retry with
// a fresh number.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Find(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ListEndingBefore returns orders whose preferredTo lies strictly
	// before the cutoff, excluding those already in the given status.
	ListEndingBefore(ctx context.Context, cutoff time.Time, excluding domain.OrderStatus) ([]domain.Order, error)
}

// OrderUseCase is the inbound port for order lifecycle operations.
type OrderUseCase interface {
	// Create validates the request against the referenced offer, prices
	// it, freezes the offer's pricing fields into the order and stores it
	// with status new. Validation failures leave no partial record.
	Create(ctx context.Context, offerID, buyerID uuid.UUID, req domain.OrderRequest) (*domain.Order, error)
	Find(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// ChangeStatus sets any target status. Entering closed from another
	// status computes the commission exactly once.
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// CloseExpired closes every open order whose requested period ended
	// before now and returns how many were closed.
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}
