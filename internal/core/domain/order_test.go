package domain

import (
	"regexp"
	"testing"
	"time"
)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^AO-20260[3]\d{4}$`)

	for i := 0; i < 50; i++ {
		n := NewOrderNumber(now)
		if !pattern.MatchString(n) {
			t.Fatalf("order number %q does not match AO-<year><month><4 digits>", n)
		}
	}
}

func TestOrderEnded(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	o := &Order{PreferredTo: now.Add(-time.Hour)}
	if !o.Ended(now) {
		t.Fatal("order ending an hour ago should be ended")
	}
	o.PreferredTo = now.Add(time.Hour)
	if o.Ended(now) {
		t.Fatal("order ending in an hour should not be ended")
	}
}

func TestOfferExpired(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	o := &Offer{ValidTo: now.Add(-time.Minute)}
	if !o.Expired(now) {
		t.Fatal("offer past validTo should be expired")
	}
}
