package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. The status-change
// operation accepts any target status; no transition graph is enforced.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusClosed     OrderStatus = "closed"
)

// Valid reports whether the status is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	return s == OrderStatusNew || s == OrderStatusInProgress || s == OrderStatusClosed
}

// OrderNumberPrefix starts every human-readable order number.
const OrderNumberPrefix = "AO-"

// MaxNoteLength bounds the free-text note attached to an order.
const MaxNoteLength = 500

// Order is a buyer's purchase request against a published offer. The
// pricing fields are copied from the offer at creation time so later
// offer edits cannot change an existing order's economics.
type Order struct {
	ID     uuid.UUID
	Number string

	OfferID     uuid.UUID
	BuyerID     uuid.UUID
	PublisherID uuid.UUID

	// Pricing snapshot, frozen at creation.
	PricingModel PricingModel
	UnitPrice    decimal.Decimal
	CPTRate      decimal.Decimal

	PreferredFrom time.Time
	PreferredTo   time.Time
	Quantity      *int64
	Impressions   *int64
	Note          string

	TotalPrice       decimal.Decimal
	CommissionRate   *decimal.Decimal
	CommissionAmount *decimal.Decimal

	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrderNumber generates a human-readable order number of the form
// AO-<year><month><4-digit suffix>, e.g. AO-2026031234. The suffix is
// random and carries no uniqueness guarantee on its own; the storage
// layer's unique constraint is the arbiter, and callers retry with a
// fresh number on a collision.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s%d%02d%04d", OrderNumberPrefix, now.Year(), int(now.Month()), rand.Intn(10000))
}

// SnapshotPricing freezes the offer's pricing fields into the order.
// Absent price fields snapshot as zero.
func (o *Order) SnapshotPricing(offer *Offer) {
	o.PricingModel = offer.PricingModel
	o.UnitPrice = offer.unitPrice()
	o.CPTRate = offer.cptRate()
}

// Ended reports whether the order's requested campaign window has passed.
func (o *Order) Ended(now time.Time) bool {
	return o.PreferredTo.Before(now)
}
