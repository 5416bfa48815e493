package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderNumberTaken is returned by the storage layer when an insert
	// collides with an existing order number.
	ErrOrderNumberTaken = errors.New("order number already taken")
)

// ValidationReason identifies which business rule rejected a request.
type ValidationReason string

const (
	ReasonPricingModelInvalid ValidationReason = "pricing_model_invalid"
	ReasonValidityInverted    ValidationReason = "validity_window_inverted"
	ReasonDiscountOutOfRange  ValidationReason = "discount_out_of_range"
	ReasonPriceNegative       ValidationReason = "price_negative"
	ReasonDeadlinesInverted   ValidationReason = "deadlines_inverted"

	ReasonOfferNotPublished  ValidationReason = "offer_not_published"
	ReasonPreferredInverted  ValidationReason = "preferred_dates_inverted"
	ReasonOutsideValidity    ValidationReason = "outside_offer_validity"
	ReasonBeforeLastOrderDay ValidationReason = "before_last_order_day"
	ReasonQuantityMissing    ValidationReason = "quantity_missing"
	ReasonImpressionsMissing ValidationReason = "impressions_missing"
	ReasonNoteTooLong        ValidationReason = "note_too_long"
	ReasonBelowMinOrderValue ValidationReason = "below_min_order_value"

	ReasonOfferArchived ValidationReason = "offer_archived"
	ReasonStatusInvalid ValidationReason = "status_invalid"
)

// ValidationError is a business-rule rejection. It carries a stable reason
// code for clients and a human-readable message.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}
