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

// OfferUseCase implements the offer lifecycle: draft creation, manual
// publish/archive, free-form edits, hard deletion and the bulk expiry
// transition used by the reconciliation sweep.
type OfferUseCase struct {
	offers port.OfferRepository

	// now is swappable for tests.
	now func() time.Time
}

// NewOfferUseCase creates a new usecase backed by the given repository.
func NewOfferUseCase(offers port.OfferRepository) *OfferUseCase {
	return &OfferUseCase{offers: offers, now: time.Now}
}

// Create validates the fields and stores a new offer. The status is always
// forced to draft regardless of the caller's intent.
func (u *OfferUseCase) Create(ctx context.Context, publisherID uuid.UUID, fields port.OfferFields) (*domain.Offer, error) {
	now := u.now().UTC()
	offer := &domain.Offer{
		ID:          uuid.New(),
		PublisherID: publisherID,
		Status:      domain.OfferStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyOfferFields(offer, fields)
	if err := offer.Validate(); err != nil {
		return nil, err
	}
	if err := u.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Find returns the offer or domain.ErrOfferNotFound.
func (u *OfferUseCase) Find(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, err := u.offers.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}

// Update overwrites the editable fields of an offer. Offers remain
// editable in every status, including archived; existing orders are
// unaffected because they carry their own pricing snapshot.
func (u *OfferUseCase) Update(ctx context.Context, id uuid.UUID, fields port.OfferFields) (*domain.Offer, error) {
	offer, err := u.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyOfferFields(offer, fields)
	if err = offer.Validate(); err != nil {
		return nil, err
	}
	offer.UpdatedAt = u.now().UTC()
	if err = u.offers.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Publish moves an offer into the published status. Archived offers are
// terminal and cannot be republished.
func (u *OfferUseCase) Publish(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, err := u.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer.Status == domain.OfferStatusArchived {
		return nil, &domain.ValidationError{Reason: domain.ReasonOfferArchived, Message: "archived offers cannot be published"}
	}
	return u.setStatus(ctx, offer, domain.OfferStatusPublished)
}

// Archive moves an offer into the archived status. The same transition is
// performed automatically by the sweep once validTo has passed.
func (u *OfferUseCase) Archive(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	offer, err := u.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.setStatus(ctx, offer, domain.OfferStatusArchived)
}

// Delete removes the offer record entirely. It reports whether a record
// existed; deleting an already-absent offer is not an error.
func (u *OfferUseCase) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return u.offers.Delete(ctx, id)
}

// ArchiveExpired archives every published offer whose validTo lies before
// now. Records that fail to update are skipped so the rest of the batch
// still converges; the joined error reports what was skipped.
func (u *OfferUseCase) ArchiveExpired(ctx context.Context, now time.Time) (int, error) {
	expired, err := u.offers.ListPublishedExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	var (
		archived int
		errs     []error
	)
	for i := range expired {
		offer := &expired[i]
		offer.Status = domain.OfferStatusArchived
		offer.UpdatedAt = u.now().UTC()
		if err = u.offers.Update(ctx, offer); err != nil {
			errs = append(errs, fmt.Errorf("archive offer %s: %w", offer.ID, err))
			continue
		}
		archived++
	}
	return archived, errors.Join(errs...)
}

func (u *OfferUseCase) setStatus(ctx context.Context, offer *domain.Offer, status domain.OfferStatus) (*domain.Offer, error) {
	offer.Status = status
	offer.UpdatedAt = u.now().UTC()
	if err := u.offers.Update(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func applyOfferFields(offer *domain.Offer, fields port.OfferFields) {
	offer.Title = fields.Title
	offer.PricingModel = fields.PricingModel
	offer.UnitPrice = fields.UnitPrice
	offer.CPTRate = fields.CPTRate
	offer.MinOrderValue = fields.MinOrderValue
	offer.DiscountPercent = fields.DiscountPercent
	offer.ValidFrom = fields.ValidFrom
	offer.ValidTo = fields.ValidTo
	offer.LastOrderDay = fields.LastOrderDay
	offer.DeadlineAssets = fields.DeadlineAssets
}
