package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

func testOrder() *domain.Order {
	now := time.Now().UTC()
	qty := int64(5)
	return &domain.Order{
		ID:            uuid.New(),
		Number:        "AO-2026030042",
		OfferID:       uuid.New(),
		BuyerID:       uuid.New(),
		PublisherID:   uuid.New(),
		PricingModel:  domain.PricingUnitPrice,
		UnitPrice:     decimal.RequireFromString("100"),
		PreferredFrom: now,
		PreferredTo:   now.Add(10 * 24 * time.Hour),
		Quantity:      &qty,
		TotalPrice:    decimal.RequireFromString("450"),
		Status:        domain.OrderStatusNew,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// anyOrderArgs matches the 19 insert placeholders without constraining their
// values; pgxmock v3 requires the expected argument count to match exactly.
func anyOrderArgs() []interface{} {
	args := make([]interface{}, 19)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestOrderCreate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	order := testOrder()
	mock.ExpectExec(`(?s)INSERT INTO orders`).
		WithArgs(anyOrderArgs()...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Create(context.Background(), order); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// TestOrderCreateNumberCollision ensures a unique violation on insert maps
// to domain.ErrOrderNumberTaken, which drives the regenerate-and-retry
// loop in the usecase.
func TestOrderCreateNumberCollision(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	mock.ExpectExec(`(?s)INSERT INTO orders`).
		WithArgs(anyOrderArgs()...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "orders_number_key"})

	err := repo.Create(context.Background(), testOrder())
	if !errors.Is(err, domain.ErrOrderNumberTaken) {
		t.Fatalf("expected ErrOrderNumberTaken, got %v", err)
	}
}

func TestOrderUpdateWritesLifecycleColumns(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	order := testOrder()
	order.Status = domain.OrderStatusClosed
	order.ApplyCommission(domain.FlatLowCommission)

	mock.ExpectExec(`(?s)UPDATE orders SET.+WHERE id = \$1`).
		WithArgs(order.ID, order.Status, order.CommissionRate, order.CommissionAmount, order.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.Update(context.Background(), order); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderListEndingBefore(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	cutoff := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := cutoff.Add(-24 * time.Hour)
	qty := int64(5)

	rows := pgxmock.NewRows([]string{
		"id", "number", "offer_id", "buyer_id", "publisher_id", "pricing_model",
		"unit_price", "cpt_rate", "preferred_from", "preferred_to", "quantity",
		"impressions", "note", "total_price", "commission_rate", "commission_amount",
		"status", "created_at", "updated_at",
	}).AddRow(
		uuid.New(), "AO-2026030042", uuid.New(), uuid.New(), uuid.New(),
		domain.PricingUnitPrice, decimal.RequireFromString("100"), decimal.Zero,
		past.Add(-time.Hour), past, &qty, (*int64)(nil), "",
		decimal.RequireFromString("500"), (*decimal.Decimal)(nil), (*decimal.Decimal)(nil),
		domain.OrderStatusInProgress, past, past,
	)

	mock.ExpectQuery(`(?s)SELECT .+ FROM orders.+WHERE preferred_to < \$1 AND status <> \$2`).
		WithArgs(cutoff, domain.OrderStatusClosed).
		WillReturnRows(rows)

	orders, err := repo.ListEndingBefore(context.Background(), cutoff, domain.OrderStatusClosed)
	if err != nil {
		t.Fatalf("ListEndingBefore error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders: got %d, want 1", len(orders))
	}
	if orders[0].Status != domain.OrderStatusInProgress {
		t.Fatalf("status: got %s", orders[0].Status)
	}
	if orders[0].CommissionAmount != nil {
		t.Fatal("expected no commission before closing")
	}
}

func TestOrderDelete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	existed, err := repo.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if existed {
		t.Fatal("expected existed=false for an absent order")
	}
}
