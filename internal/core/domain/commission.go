package domain

import "github.com/shopspring/decimal"

// Commission rate tiers. Only the low tier is ever selected today; the
// high tier is a reserved business rule with no active selection path.
var (
	CommissionRateLow  = decimal.New(25, -3) // 2.5%
	CommissionRateHigh = decimal.New(5, -2)  // 5%
)

// CommissionPolicy selects the commission rate for an order's total price.
type CommissionPolicy func(total decimal.Decimal) decimal.Decimal

// FlatLowCommission is the only active policy: every order is charged the
// low tier regardless of its total.
func FlatLowCommission(decimal.Decimal) decimal.Decimal {
	return CommissionRateLow
}

// ApplyCommission records the commission for an order entering the closed
// state. It is idempotent: once an amount has been recorded it is never
// recomputed, even if the total price has since changed. The return value
// reports whether a commission was applied by this call.
func (o *Order) ApplyCommission(policy CommissionPolicy) bool {
	if o.CommissionAmount != nil {
		return false
	}
	rate := policy(o.TotalPrice)
	amount := o.TotalPrice.Mul(rate)
	o.CommissionRate = &rate
	o.CommissionAmount = &amount
	return true
}
