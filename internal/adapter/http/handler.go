package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mesa-market/internal/core/domain"
	"mesa-market/internal/core/port"
)

// Ticker runs one reconciliation pass on demand. It is implemented by the
// sweep worker and exposed over HTTP for operational use.
type Ticker interface {
	Tick(ctx context.Context) (archived, closed int)
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the offer and order use cases, the sweep for manual
// ticks, and a logger for structured logging. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	offers port.OfferUseCase
	orders port.OrderUseCase
	sweep  Ticker
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(offers port.OfferUseCase, orders port.OrderUseCase, sweep Ticker, logger *slog.Logger) *Handler {
	h := &Handler{offers: offers, orders: orders, sweep: sweep, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/offers", func(r chi.Router) {
			r.Post("/", h.handleOfferCreate)
			r.Get("/{id}", h.handleOfferGet)
			r.Put("/{id}", h.handleOfferUpdate)
			r.Delete("/{id}", h.handleOfferDelete)
			r.Post("/{id}/publish", h.handleOfferPublish)
			r.Post("/{id}/archive", h.handleOfferArchive)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.handleOrderCreate)
			r.Get("/{id}", h.handleOrderGet)
			r.Patch("/{id}/status", h.handleOrderStatus)
			r.Delete("/{id}", h.handleOrderDelete)
		})
		r.Post("/sweep/tick", h.handleSweepTick)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleSweepTick triggers one reconciliation pass outside the schedule
// and reports what it transitioned.
func (h *Handler) handleSweepTick(w http.ResponseWriter, r *http.Request) {
	archived, closed := h.sweep.Tick(r.Context())
	h.writeJSON(w, http.StatusOK, map[string]int{
		"offersArchived": archived,
		"ordersClosed":   closed,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto HTTP semantics: not-found to 404,
// business-rule rejections to 400 with their reason code, everything else
// to an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrOfferNotFound), errors.Is(err, domain.ErrOrderNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{
			"reason": string(ve.Reason),
			"error":  ve.Message,
		})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
