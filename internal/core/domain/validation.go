package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest carries the buyer's requested terms for a new order.
type OrderRequest struct {
	PreferredFrom time.Time
	PreferredTo   time.Time
	Quantity      *int64
	Impressions   *int64
	Note          string
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateOrderRequest runs the order-creation gate against a published
// offer. Checks run in a fixed order and the first failure aborts with its
// own reason. On success the computed total price is returned, so the
// caller does not price the request a second time.
//
// Note the last-order-day rule compares the requested start date, not the
// creation timestamp, against lastOrderDay. That is the inherited
// behavior; see DESIGN.md.
func ValidateOrderRequest(offer *Offer, req OrderRequest) (decimal.Decimal, error) {
	if offer.Status != OfferStatusPublished {
		return decimal.Zero, &ValidationError{Reason: ReasonOfferNotPublished, Message: "offer is not published"}
	}
	if !req.PreferredTo.After(req.PreferredFrom) {
		return decimal.Zero, &ValidationError{Reason: ReasonPreferredInverted, Message: "preferredTo must be after preferredFrom"}
	}
	from, to := dateOnly(req.PreferredFrom), dateOnly(req.PreferredTo)
	if from.Before(dateOnly(offer.ValidFrom)) || to.After(dateOnly(offer.ValidTo)) {
		return decimal.Zero, &ValidationError{Reason: ReasonOutsideValidity, Message: "requested period is outside the offer validity window"}
	}
	if offer.LastOrderDay != nil && from.Before(dateOnly(*offer.LastOrderDay)) {
		return decimal.Zero, &ValidationError{Reason: ReasonBeforeLastOrderDay, Message: "requested start is before the offer's last order day"}
	}
	switch offer.PricingModel {
	case PricingUnitPrice:
		if req.Quantity == nil || *req.Quantity <= 0 {
			return decimal.Zero, &ValidationError{Reason: ReasonQuantityMissing, Message: "a positive quantity is required for unit-price offers"}
		}
	case PricingCPT:
		if req.Impressions == nil || *req.Impressions <= 0 {
			return decimal.Zero, &ValidationError{Reason: ReasonImpressionsMissing, Message: "a positive impression count is required for cpt offers"}
		}
	}
	if len(req.Note) > MaxNoteLength {
		return decimal.Zero, &ValidationError{Reason: ReasonNoteTooLong, Message: "note exceeds the maximum length"}
	}
	total := offer.Quote(req.Quantity, req.Impressions).Total()
	if offer.MinOrderValue != nil && total.LessThan(*offer.MinOrderValue) {
		return decimal.Zero, &ValidationError{Reason: ReasonBelowMinOrderValue, Message: "total price is below the offer's minimum order value"}
	}
	return total, nil
}
