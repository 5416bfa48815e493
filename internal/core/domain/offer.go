package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingModel determines how an order's total price is derived from an
// offer: a flat price per unit, or a rate per thousand impressions (CPT).
type PricingModel string

const (
	PricingUnitPrice PricingModel = "unit_price"
	PricingCPT       PricingModel = "cpt"
)

// Valid reports whether the model is one of the known pricing models.
func (m PricingModel) Valid() bool {
	return m == PricingUnitPrice || m == PricingCPT
}

// OfferStatus is the lifecycle state of an offer. Offers start as draft,
// become purchasable when published and end up archived, either manually
// or once their validity window has passed.
type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "draft"
	OfferStatusPublished OfferStatus = "published"
	OfferStatusArchived  OfferStatus = "archived"
)

// Offer is a publisher's listing of purchasable advertising space.
// Price fields are optional; DiscountPercent is a percentage in [0,100].
type Offer struct {
	ID          uuid.UUID
	PublisherID uuid.UUID
	Title       string

	PricingModel    PricingModel
	UnitPrice       *decimal.Decimal
	CPTRate         *decimal.Decimal // price per 1000 impression units
	MinOrderValue   *decimal.Decimal
	DiscountPercent decimal.Decimal

	ValidFrom      time.Time
	ValidTo        time.Time
	LastOrderDay   *time.Time
	DeadlineAssets *time.Time // materials deadline

	Status    OfferStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the cross-field invariants of an offer. It is applied on
// creation and on every update, regardless of the offer's status.
func (o *Offer) Validate() error {
	if !o.PricingModel.Valid() {
		return &ValidationError{Reason: ReasonPricingModelInvalid, Message: "unknown pricing model"}
	}
	if !o.ValidTo.After(o.ValidFrom) {
		return &ValidationError{Reason: ReasonValidityInverted, Message: "validTo must be after validFrom"}
	}
	if o.DiscountPercent.IsNegative() || o.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return &ValidationError{Reason: ReasonDiscountOutOfRange, Message: "discount percent must be between 0 and 100"}
	}
	if o.UnitPrice != nil && o.UnitPrice.IsNegative() {
		return &ValidationError{Reason: ReasonPriceNegative, Message: "unit price must not be negative"}
	}
	if o.CPTRate != nil && o.CPTRate.IsNegative() {
		return &ValidationError{Reason: ReasonPriceNegative, Message: "cpt rate must not be negative"}
	}
	if o.MinOrderValue != nil && o.MinOrderValue.IsNegative() {
		return &ValidationError{Reason: ReasonPriceNegative, Message: "minimum order value must not be negative"}
	}
	if o.LastOrderDay != nil && o.DeadlineAssets != nil && o.LastOrderDay.After(*o.DeadlineAssets) {
		return &ValidationError{Reason: ReasonDeadlinesInverted, Message: "lastOrderDay must not be after deadlineAssets"}
	}
	return nil
}

// Expired reports whether the offer's validity window has passed at the
// given instant.
func (o *Offer) Expired(now time.Time) bool {
	return o.ValidTo.Before(now)
}

func (o *Offer) unitPrice() decimal.Decimal {
	if o.UnitPrice == nil {
		return decimal.Zero
	}
	return *o.UnitPrice
}

func (o *Offer) cptRate() decimal.Decimal {
	if o.CPTRate == nil {
		return decimal.Zero
	}
	return *o.CPTRate
}
