package domain

import "github.com/shopspring/decimal"

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// PriceQuote holds the inputs of a total-price calculation: the pricing
// model with its price field, the ordered amount and the discount percent.
type PriceQuote struct {
	Model           PricingModel
	UnitPrice       decimal.Decimal
	CPTRate         decimal.Decimal
	Quantity        *int64
	Impressions     *int64
	DiscountPercent decimal.Decimal
}

// Total computes the discounted total price without rounding:
//
//	unit_price: unitPrice * quantity * (1 - discount/100)
//	cpt:        cptRate * impressions / 1000 * (1 - discount/100)
//
// Missing amounts are treated as zero; callers validate presence before
// quoting, so a well-formed quote never needs that fallback.
func (q PriceQuote) Total() decimal.Decimal {
	var base decimal.Decimal
	switch q.Model {
	case PricingCPT:
		if q.Impressions != nil {
			base = q.CPTRate.Mul(decimal.NewFromInt(*q.Impressions)).Div(thousand)
		}
	default:
		if q.Quantity != nil {
			base = q.UnitPrice.Mul(decimal.NewFromInt(*q.Quantity))
		}
	}
	factor := decimal.NewFromInt(1).Sub(q.DiscountPercent.Div(hundred))
	return base.Mul(factor)
}

// Quote builds a price quote from an offer and the requested amounts.
func (o *Offer) Quote(quantity, impressions *int64) PriceQuote {
	return PriceQuote{
		Model:           o.PricingModel,
		UnitPrice:       o.unitPrice(),
		CPTRate:         o.cptRate(),
		Quantity:        quantity,
		Impressions:     impressions,
		DiscountPercent: o.DiscountPercent,
	}
}
