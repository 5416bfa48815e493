package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port/mocks"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func int64p(v int64) *int64 { return &v }

func testOffer(t *testing.T) *domain.Offer {
	up := dec(t, "100")
	return &domain.Offer{
		ID:              uuid.New(),
		PublisherID:     uuid.New(),
		Title:           "Homepage banner March",
		PricingModel:    domain.PricingUnitPrice,
		UnitPrice:       &up,
		DiscountPercent: dec(t, "10"),
		ValidFrom:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:         time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:          domain.OfferStatusPublished,
	}
}

func testRequest() domain.OrderRequest {
	return domain.OrderRequest{
		PreferredFrom: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		PreferredTo:   time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		Quantity:      int64p(5),
	}
}

// TestCreateOrderSnapshotsPricing ensures a created order freezes the
// offer's pricing fields and carries the discounted total.
func TestCreateOrderSnapshotsPricing(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	offer := testOffer(t)
	buyer := uuid.New()

	offers.EXPECT().Find(mock.Anything, offer.ID).Return(offer, nil)
	orders.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(nil)

	svc := NewOrderUseCase(orders, offers, nil)
	order, err := svc.Create(context.Background(), offer.ID, buyer, testRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if order.Status != domain.OrderStatusNew {
		t.Fatalf("status: got %s, want new", order.Status)
	}
	// 100 * 5 * 0.9
	if !order.TotalPrice.Equal(dec(t, "450")) {
		t.Fatalf("total: got %s, want 450", order.TotalPrice)
	}
	if !order.UnitPrice.Equal(*offer.UnitPrice) || order.PricingModel != offer.PricingModel {
		t.Fatal("pricing snapshot does not match the offer")
	}
	if order.PublisherID != offer.PublisherID || order.BuyerID != buyer {
		t.Fatal("order parties do not match")
	}
	if !strings.HasPrefix(order.Number, domain.OrderNumberPrefix) {
		t.Fatalf("order number %q lacks prefix", order.Number)
	}
}

// TestCreateOrderLaterOfferEditDoesNotAffectOrder verifies the snapshot is
// a copy: editing the offer's price afterwards leaves the order untouched.
func TestCreateOrderLaterOfferEditDoesNotAffectOrder(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	offer := testOffer(t)
	offers.EXPECT().Find(mock.Anything, offer.ID).Return(offer, nil)
	orders.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)

	svc := NewOrderUseCase(orders, offers, nil)
	order, err := svc.Create(context.Background(), offer.ID, uuid.New(), testRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	bumped := dec(t, "999")
	offer.UnitPrice = &bumped
	if !order.UnitPrice.Equal(dec(t, "100")) {
		t.Fatalf("snapshot changed with the offer: got %s", order.UnitPrice)
	}
}

func TestCreateOrderOfferNotFound(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	id := uuid.New()
	offers.EXPECT().Find(mock.Anything, id).Return(nil, nil)

	svc := NewOrderUseCase(orders, offers, nil)
	if _, err := svc.Create(context.Background(), id, uuid.New(), testRequest()); !errors.Is(err, domain.ErrOfferNotFound) {
		t.Fatalf("expected ErrOfferNotFound, got %v", err)
	}
}

// TestCreateOrderRejectedBelowMinimum ensures a gate failure produces no
// write at all: the order repository is never called.
func TestCreateOrderRejectedBelowMinimum(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	offer := testOffer(t)
	minVal := dec(t, "5000")
	offer.MinOrderValue = &minVal
	offers.EXPECT().Find(mock.Anything, offer.ID).Return(offer, nil)

	svc := NewOrderUseCase(orders, offers, nil)
	_, err := svc.Create(context.Background(), offer.ID, uuid.New(), testRequest())

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Reason != domain.ReasonBelowMinOrderValue {
		t.Fatalf("expected below-minimum rejection, got %v", err)
	}
}

// TestCreateOrderRetriesOnNumberCollision checks the bounded retry loop:
// duplicate order numbers regenerate until the insert succeeds.
func TestCreateOrderRetriesOnNumberCollision(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	offer := testOffer(t)
	offers.EXPECT().Find(mock.Anything, offer.ID).Return(offer, nil)

	calls := 0
	orders.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(ctx context.Context, order *domain.Order) {
			calls++
		}).
		Return(domain.ErrOrderNumberTaken).
		Twice()
	orders.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(ctx context.Context, order *domain.Order) {
			calls++
		}).
		Return(nil).
		Once()

	svc := NewOrderUseCase(orders, offers, nil)
	if _, err := svc.Create(context.Background(), offer.ID, uuid.New(), testRequest()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("insert attempts: got %d, want 3", calls)
	}
}

func TestCreateOrderGivesUpAfterMaxAttempts(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	offer := testOffer(t)
	offers.EXPECT().Find(mock.Anything, offer.ID).Return(offer, nil)
	orders.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(domain.ErrOrderNumberTaken).
		Times(maxNumberAttempts)

	svc := NewOrderUseCase(orders, offers, nil)
	if _, err := svc.Create(context.Background(), offer.ID, uuid.New(), testRequest()); !errors.Is(err, domain.ErrOrderNumberTaken) {
		t.Fatalf("expected ErrOrderNumberTaken after exhausting retries, got %v", err)
	}
}

// TestChangeStatusClosedComputesCommissionOnce covers the idempotency
// guarantee: closing twice leaves the first commission untouched.
func TestChangeStatusClosedComputesCommissionOnce(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	order := &domain.Order{
		ID:         uuid.New(),
		TotalPrice: dec(t, "1000"),
		Status:     domain.OrderStatusInProgress,
	}
	orders.EXPECT().Find(mock.Anything, order.ID).Return(order, nil)
	orders.EXPECT().Update(mock.Anything, order).Return(nil)

	svc := NewOrderUseCase(orders, offers, nil)

	got, err := svc.ChangeStatus(context.Background(), order.ID, domain.OrderStatusClosed)
	if err != nil {
		t.Fatalf("ChangeStatus error: %v", err)
	}
	if got.CommissionRate == nil || !got.CommissionRate.Equal(dec(t, "0.025")) {
		t.Fatalf("rate: got %v, want 0.025", got.CommissionRate)
	}
	if got.CommissionAmount == nil || !got.CommissionAmount.Equal(dec(t, "25")) {
		t.Fatalf("amount: got %v, want 25", got.CommissionAmount)
	}

	// Closing again must not recompute.
	got, err = svc.ChangeStatus(context.Background(), order.ID, domain.OrderStatusClosed)
	if err != nil {
		t.Fatalf("second ChangeStatus error: %v", err)
	}
	if !got.CommissionAmount.Equal(dec(t, "25")) {
		t.Fatalf("amount after second close: got %s, want 25", got.CommissionAmount)
	}
}

// TestChangeStatusPermissive documents the inherited behavior: any target
// status is accepted, including moving out of closed.
func TestChangeStatusPermissive(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	order := &domain.Order{ID: uuid.New(), Status: domain.OrderStatusClosed}
	orders.EXPECT().Find(mock.Anything, order.ID).Return(order, nil)
	orders.EXPECT().Update(mock.Anything, order).Return(nil)

	svc := NewOrderUseCase(orders, offers, nil)
	got, err := svc.ChangeStatus(context.Background(), order.ID, domain.OrderStatusNew)
	if err != nil {
		t.Fatalf("ChangeStatus error: %v", err)
	}
	if got.Status != domain.OrderStatusNew {
		t.Fatalf("status: got %s, want new", got.Status)
	}
}

func TestChangeStatusUnknownStatus(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	svc := NewOrderUseCase(orders, offers, nil)
	_, err := svc.ChangeStatus(context.Background(), uuid.New(), domain.OrderStatus("shipped"))

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Reason != domain.ReasonStatusInvalid {
		t.Fatalf("expected status rejection, got %v", err)
	}
}

func TestChangeStatusNotFound(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	id := uuid.New()
	orders.EXPECT().Find(mock.Anything, id).Return(nil, nil)

	svc := NewOrderUseCase(orders, offers, nil)
	if _, err := svc.ChangeStatus(context.Background(), id, domain.OrderStatusClosed); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

// TestCloseExpired checks the sweep entry point: ended open orders are
// closed with commissions, and one failing record does not stop the batch.
func TestCloseExpired(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	ended := []domain.Order{
		{ID: uuid.New(), TotalPrice: dec(t, "1000"), Status: domain.OrderStatusNew},
		{ID: uuid.New(), TotalPrice: dec(t, "200"), Status: domain.OrderStatusInProgress},
	}
	orders.EXPECT().
		ListEndingBefore(mock.Anything, now, domain.OrderStatusClosed).
		Return(ended, nil)
	orders.EXPECT().Update(mock.Anything, &ended[0]).Return(errors.New("connection reset"))
	orders.EXPECT().Update(mock.Anything, &ended[1]).Return(nil)

	svc := NewOrderUseCase(orders, offers, nil)
	closed, err := svc.CloseExpired(context.Background(), now)
	if closed != 1 {
		t.Fatalf("closed: got %d, want 1", closed)
	}
	if err == nil {
		t.Fatal("expected the failed record to be reported")
	}
	if ended[1].Status != domain.OrderStatusClosed {
		t.Fatalf("status: got %s, want closed", ended[1].Status)
	}
	if ended[1].CommissionAmount == nil || !ended[1].CommissionAmount.Equal(dec(t, "5")) {
		t.Fatalf("commission: got %v, want 5", ended[1].CommissionAmount)
	}
}

func TestDeleteOrder(t *testing.T) {
	offers := mocks.NewMockOfferRepository(t)
	orders := mocks.NewMockOrderRepository(t)

	id := uuid.New()
	orders.EXPECT().Delete(mock.Anything, id).Return(true, nil)

	svc := NewOrderUseCase(orders, offers, nil)
	existed, err := svc.Delete(context.Background(), id)
	if err != nil || !existed {
		t.Fatalf("Delete: got (%v, %v), want (true, nil)", existed, err)
	}
}
