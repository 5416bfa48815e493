package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

// OfferFields is the caller-editable part of an offer, shared by the
// create and update operations. Status is never settable through it.
type OfferFields struct {
	Title           string
	PricingModel    domain.PricingModel
	UnitPrice       *decimal.Decimal
	CPTRate         *decimal.Decimal
	MinOrderValue   *decimal.Decimal
	DiscountPercent decimal.Decimal
	ValidFrom       time.Time
	ValidTo         time.Time
	LastOrderDay    *time.Time
	DeadlineAssets  *time.Time
}

// OfferRepository is the outbound persistence port for offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	Find(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	Update(ctx context.Context, offer *domain.Offer) error
	// Delete removes the offer and reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ListPublishedExpiredBefore returns published offers whose validTo
	// lies strictly before the cutoff.
	ListPublishedExpiredBefore(ctx context.Context, cutoff time.Time) ([]domain.Offer, error)
}

// OfferUseCase is the inbound port for offer lifecycle operations.
type OfferUseCase interface {
	// Create stores a new offer in draft status after validating its
	// cross-field invariants.
	Create(ctx context.Context, publisherID uuid.UUID, fields OfferFields) (*domain.Offer, error)
	Find(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	// Update overwrites the editable fields. Offers stay editable in any
	// status, including archived.
	Update(ctx context.Context, id uuid.UUID, fields OfferFields) (*domain.Offer, error)
	Publish(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	Archive(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// ArchiveExpired archives every published offer whose validity window
	// ended before now and returns how many were archived.
	ArchiveExpired(ctx context.Context, now time.Time) (int, error)
}
