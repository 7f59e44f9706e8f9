package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/cart"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/price"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/whatsapp"
)

type CartHandler struct {
	sessions *cart.Manager
	catalog  catalog.Repository
	defaults catalog.Settings
	logger   *log.Logger
}

func NewCartHandler(sessions *cart.Manager, repo catalog.Repository, defaults catalog.Settings, logger *log.Logger) *CartHandler {
	return &CartHandler{sessions: sessions, catalog: repo, defaults: defaults, logger: logger}
}

// CreateSession starts a new cart session.
func (h *CartHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Create()
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": id})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, store.Snapshot())
}

type addItemRequest struct {
	Title     string      `json:"title"`
	Price     price.Input `json:"price"`
	ImageURL  string      `json:"imageUrl"`
	ProductID string      `json:"productId"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var body addItemRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Title == "" {
		writeError(w, http.StatusBadRequest, "missing title")
		return
	}

	store.AddItem(cart.Candidate{
		Title:     body.Title,
		Price:     body.Price.Normalized,
		ImageURL:  body.ImageURL,
		ProductID: body.ProductID,
	})

	writeJSON(w, http.StatusOK, store.Snapshot())
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var body setQuantityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if !store.SetQuantity(chi.URLParam(r, "itemId"), body.Quantity) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, store.Snapshot())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	if !store.RemoveItem(chi.URLParam(r, "itemId")) {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, store.Snapshot())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}
	store.Clear()
	writeJSON(w, http.StatusOK, store.Snapshot())
}

type toggleRequest struct {
	Open *bool `json:"open"`
}

func (h *CartHandler) TogglePresentation(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	var body toggleRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	writeJSON(w, http.StatusOK, store.Toggle(body.Open))
}

// WhatsAppOrder formats the cart as an order message and returns the wa.me
// deep link for the client to open.
func (h *CartHandler) WhatsAppOrder(w http.ResponseWriter, r *http.Request) {
	store, ok := h.store(w, r)
	if !ok {
		return
	}

	message, link, err := store.WhatsAppOrder(h.composer(r.Context()))
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			writeJSON(w, http.StatusConflict, map[string]string{
				"warning": "السلة فارغة، أضف منتجات أولاً",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to compose order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": message,
		"url":     link,
	})
}

// composer builds the WhatsApp composer from the store settings, falling back
// to configured defaults when the settings row is unreachable.
func (h *CartHandler) composer(ctx context.Context) *whatsapp.Composer {
	settings := h.defaults

	queryCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if s, err := h.catalog.GetSettings(queryCtx); err == nil {
		settings = s
	} else if !errors.Is(err, catalog.ErrNotFound) {
		h.logger.Printf("load store settings: %v", err)
	}

	return &whatsapp.Composer{
		Number:         settings.WhatsAppNumber,
		CurrencySuffix: settings.CurrencySuffix,
	}
}

func (h *CartHandler) store(w http.ResponseWriter, r *http.Request) (*cart.Store, bool) {
	id := chi.URLParam(r, "sessionId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing sessionId")
		return nil, false
	}
	store, ok := h.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "cart session not found")
		return nil, false
	}
	return store, true
}
