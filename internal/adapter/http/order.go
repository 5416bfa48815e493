package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
)

type orderPayload struct {
	OfferID       uuid.UUID `json:"offerId"`
	BuyerID       uuid.UUID `json:"buyerId"`
	PreferredFrom time.Time `json:"preferredFrom"`
	PreferredTo   time.Time `json:"preferredTo"`
	Quantity      *int64    `json:"quantity,omitempty"`
	Impressions   *int64    `json:"impressions,omitempty"`
	Note          string    `json:"note,omitempty"`
}

type orderResponse struct {
	ID               uuid.UUID        `json:"id"`
	Number           string           `json:"number"`
	OfferID          uuid.UUID        `json:"offerId"`
	BuyerID          uuid.UUID        `json:"buyerId"`
	PublisherID      uuid.UUID        `json:"publisherId"`
	PricingModel     string           `json:"pricingModel"`
	UnitPrice        decimal.Decimal  `json:"unitPrice"`
	CPTRate          decimal.Decimal  `json:"cptRate"`
	PreferredFrom    time.Time        `json:"preferredFrom"`
	PreferredTo      time.Time        `json:"preferredTo"`
	Quantity         *int64           `json:"quantity,omitempty"`
	Impressions      *int64           `json:"impressions,omitempty"`
	Note             string           `json:"note,omitempty"`
	TotalPrice       decimal.Decimal  `json:"totalPrice"`
	CommissionRate   *decimal.Decimal `json:"commissionRate,omitempty"`
	CommissionAmount *decimal.Decimal `json:"commissionAmount,omitempty"`
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:               o.ID,
		Number:           o.Number,
		OfferID:          o.OfferID,
		BuyerID:          o.BuyerID,
		PublisherID:      o.PublisherID,
		PricingModel:     string(o.PricingModel),
		UnitPrice:        o.UnitPrice,
		CPTRate:          o.CPTRate,
		PreferredFrom:    o.PreferredFrom,
		PreferredTo:      o.PreferredTo,
		Quantity:         o.Quantity,
		Impressions:      o.Impressions,
		Note:             o.Note,
		TotalPrice:       o.TotalPrice,
		CommissionRate:   o.CommissionRate,
		CommissionAmount: o.CommissionAmount,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// handleOrderCreate places an order against a published offer. The
// validation gate rejects the request with a reason code before any
// record is written; a missing offer yields 404.
func (h *Handler) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	var p orderPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if p.OfferID == uuid.Nil || p.BuyerID == uuid.Nil {
		http.Error(w, "offerId and buyerId are required", http.StatusBadRequest)
		return
	}
	order, err := h.orders.Create(r.Context(), p.OfferID, p.BuyerID, domain.OrderRequest{
		PreferredFrom: p.PreferredFrom,
		PreferredTo:   p.PreferredTo,
		Quantity:      p.Quantity,
		Impressions:   p.Impressions,
		Note:          p.Note,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) handleOrderGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	order, err := h.orders.Find(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// handleOrderStatus sets the order's status. Closing an order computes its
// commission exactly once; any target status is otherwise accepted.
func (h *Handler) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	order, err := h.orders.ChangeStatus(r.Context(), id, domain.OrderStatus(body.Status))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *Handler) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	existed, err := h.orders.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !existed {
		h.writeError(w, domain.ErrOrderNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
