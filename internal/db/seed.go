package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

// Seed inserts demo offers and orders into the mesa-market database.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	publishers := []uuid.UUID{uuid.New(), uuid.New()}
	buyers := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	type seedOffer struct {
		id        uuid.UUID
		publisher uuid.UUID
		model     domain.PricingModel
		unitPrice *decimal.Decimal
		cptRate   *decimal.Decimal
		discount  decimal.Decimal
	}
	var offers []seedOffer

	for i := 1; i <= 5; i++ {
		offer := seedOffer{
			id:        uuid.New(),
			publisher: publishers[r.Intn(len(publishers))],
			discount:  decimal.NewFromInt(int64(r.Intn(4) * 5)),
		}
		if i%2 == 0 {
			rate := decimal.NewFromInt(int64(100 + r.Intn(200)))
			offer.model = domain.PricingCPT
			offer.cptRate = &rate
		} else {
			price := decimal.NewFromInt(int64(50 + r.Intn(150)))
			offer.model = domain.PricingUnitPrice
			offer.unitPrice = &price
		}
		title := fmt.Sprintf("Ad space %d", i)
		validFrom := now.AddDate(0, 0, -7)
		validTo := now.AddDate(0, 1, 0)
		_, err := db.Exec(ctx, `INSERT INTO offers
    (id, publisher_id, title, pricing_model, unit_price, cpt_rate, min_order_value,
     discount_percent, valid_from, valid_to, last_order_day, deadline_assets,
     status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,NULL,$7,$8,$9,NULL,NULL,$10,now(),now()) ON CONFLICT DO NOTHING`,
			offer.id, offer.publisher, title, offer.model, offer.unitPrice, offer.cptRate,
			offer.discount, validFrom, validTo, domain.OfferStatusPublished)
		if err != nil {
			return err
		}
		offers = append(offers, offer)
	}

	// place a few orders against each seeded offer
	for _, offer := range offers {
		for j := 0; j < 3; j++ {
			var (
				quantity    *int64
				impressions *int64
				quote       domain.PriceQuote
			)
			quote.Model = offer.model
			quote.DiscountPercent = offer.discount
			if offer.model == domain.PricingCPT {
				n := int64((r.Intn(50) + 1) * 1000)
				impressions = &n
				quote.CPTRate = *offer.cptRate
				quote.Impressions = impressions
			} else {
				n := int64(r.Intn(20) + 1)
				quantity = &n
				quote.UnitPrice = *offer.unitPrice
				quote.Quantity = quantity
			}
			from := now.AddDate(0, 0, r.Intn(5))
			to := from.AddDate(0, 0, r.Intn(10)+1)
			_, err := db.Exec(ctx, `INSERT INTO orders
    (id, number, offer_id, buyer_id, publisher_id, pricing_model, unit_price, cpt_rate,
     preferred_from, preferred_to, quantity, impressions, note, total_price,
     commission_rate, commission_amount, status, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,'',$13,NULL,NULL,$14,now(),now())
ON CONFLICT DO NOTHING`,
				uuid.New(), domain.NewOrderNumber(now), offer.id,
				buyers[r.Intn(len(buyers))], offer.publisher, offer.model,
				quote.UnitPrice, quote.CPTRate, from, to, quantity, impressions,
				quote.Total(), domain.OrderStatusNew)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
