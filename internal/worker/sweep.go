package worker

import (
	"context"
	"log/slog"
	"time"
)

// OfferArchiver archives published offers whose validity window has passed.
type OfferArchiver interface {
	ArchiveExpired(ctx context.Context, now time.Time) (int, error)
}

// OrderCloser closes open orders whose requested period has passed.
type OrderCloser interface {
	CloseExpired(ctx context.Context, now time.Time) (int, error)
}

// Sweep is the reconciliation loop. It periodically performs the same
// expiry transitions an operator could trigger manually: archiving expired
// offers and closing ended orders (which computes their commissions). A
// failing tick is logged and the schedule continues; the eligible records
// are simply picked up again on the next tick.
type Sweep struct {
	offers   OfferArchiver
	orders   OrderCloser
	interval time.Duration
	logger   *slog.Logger

	now func() time.Time
}

// NewSweep constructs the sweep. A non-positive interval falls back to one
// hour.
func NewSweep(offers OfferArchiver, orders OrderCloser, interval time.Duration, logger *slog.Logger) *Sweep {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweep{offers: offers, orders: orders, interval: interval, logger: logger, now: time.Now}
}

// Run blocks until the context is cancelled, executing one tick per
// interval. Cancellation is cooperative and checked between ticks only; an
// in-progress tick finishes its batch.
func (s *Sweep) Run(ctx context.Context) {
	s.logger.Info("reconciliation sweep started", slog.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciliation sweep stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one reconciliation pass and returns the number of offers
// archived and orders closed. It never fails: errors are logged and the
// pass reports whatever it did manage to transition. Tick is safe to
// invoke manually, outside the schedule.
func (s *Sweep) Tick(ctx context.Context) (archived, closed int) {
	now := s.now().UTC()

	archived, err := s.offers.ArchiveExpired(ctx, now)
	if err != nil {
		s.logger.Error("archiving expired offers", slog.Any("error", err))
	}
	closed, err = s.orders.CloseExpired(ctx, now)
	if err != nil {
		s.logger.Error("closing expired orders", slog.Any("error", err))
	}

	s.logger.Info("reconciliation tick finished",
		slog.Int("offers_archived", archived),
		slog.Int("orders_closed", closed))
	return archived, closed
}
