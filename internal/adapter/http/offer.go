package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

type offerPayload struct {
	PublisherID     uuid.UUID        `json:"publisherId,omitempty"`
	Title           string           `json:"title"`
	PricingModel    string           `json:"pricingModel"`
	UnitPrice       *decimal.Decimal `json:"unitPrice,omitempty"`
	CPTRate         *decimal.Decimal `json:"cptRate,omitempty"`
	MinOrderValue   *decimal.Decimal `json:"minOrderValue,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	ValidFrom       time.Time        `json:"validFrom"`
	ValidTo         time.Time        `json:"validTo"`
	LastOrderDay    *time.Time       `json:"lastOrderDay,omitempty"`
	DeadlineAssets  *time.Time       `json:"deadlineAssets,omitempty"`
}

func (p offerPayload) fields() port.OfferFields {
	return port.OfferFields{
		Title:           p.Title,
		PricingModel:    domain.PricingModel(p.PricingModel),
		UnitPrice:       p.UnitPrice,
		CPTRate:         p.CPTRate,
		MinOrderValue:   p.MinOrderValue,
		DiscountPercent: p.DiscountPercent,
		ValidFrom:       p.ValidFrom,
		ValidTo:         p.ValidTo,
		LastOrderDay:    p.LastOrderDay,
		DeadlineAssets:  p.DeadlineAssets,
	}
}

type offerResponse struct {
	ID              uuid.UUID        `json:"id"`
	PublisherID     uuid.UUID        `json:"publisherId"`
	Title           string           `json:"title"`
	PricingModel    string           `json:"pricingModel"`
	UnitPrice       *decimal.Decimal `json:"unitPrice,omitempty"`
	CPTRate         *decimal.Decimal `json:"cptRate,omitempty"`
	MinOrderValue   *decimal.Decimal `json:"minOrderValue,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	ValidFrom       time.Time        `json:"validFrom"`
	ValidTo         time.Time        `json:"validTo"`
	LastOrderDay    *time.Time       `json:"lastOrderDay,omitempty"`
	DeadlineAssets  *time.Time       `json:"deadlineAssets,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func toOfferResponse(o *domain.Offer) offerResponse {
	return offerResponse{
		ID:              o.ID,
		PublisherID:     o.PublisherID,
		Title:           o.Title,
		PricingModel:    string(o.PricingModel),
		UnitPrice:       o.UnitPrice,
		CPTRate:         o.CPTRate,
		MinOrderValue:   o.MinOrderValue,
		DiscountPercent: o.DiscountPercent,
		ValidFrom:       o.ValidFrom,
		ValidTo:         o.ValidTo,
		LastOrderDay:    o.LastOrderDay,
		DeadlineAssets:  o.DeadlineAssets,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// handleOfferCreate stores a new draft offer for the publisher named in
// the payload. Malformed JSON yields 400; business-rule violations come
// back as 400 with a reason code.
func (h *Handler) handleOfferCreate(w http.ResponseWriter, r *http.Request) {
	var p offerPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if p.PublisherID == uuid.Nil {
		http.Error(w, "publisherId is required", http.StatusBadRequest)
		return
	}
	offer, err := h.offers.Create(r.Context(), p.PublisherID, p.fields())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toOfferResponse(offer))
}

func (h *Handler) handleOfferGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	offer, err := h.offers.Find(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOfferResponse(offer))
}

// handleOfferUpdate overwrites the editable fields of an offer in any
// status. Existing orders keep their pricing snapshot.
func (h *Handler) handleOfferUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var p offerPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	offer, err := h.offers.Update(r.Context(), id, p.fields())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOfferResponse(offer))
}

func (h *Handler) handleOfferPublish(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	offer, err := h.offers.Publish(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOfferResponse(offer))
}

func (h *Handler) handleOfferArchive(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	offer, err := h.offers.Archive(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toOfferResponse(offer))
}

// handleOfferDelete removes the offer entirely. Deleting an absent offer
// yields 404 but has no other effect.
func (h *Handler) handleOfferDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	existed, err := h.offers.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !existed {
		h.writeError(w, domain.ErrOfferNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
