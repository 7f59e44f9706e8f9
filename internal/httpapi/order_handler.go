package httpapi

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/cart"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/order"
)

// OrderEventsPublisher notifies back-office consumers about new orders.
// A nil publisher disables publishing; order creation itself never depends
// on the broker being up.
type OrderEventsPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
}

type OrderHandler struct {
	repo      order.Repository
	sessions  *cart.Manager
	publisher OrderEventsPublisher
	logger    *log.Logger
}

func NewOrderHandler(repo order.Repository, sessions *cart.Manager, publisher OrderEventsPublisher, logger *log.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, sessions: sessions, publisher: publisher, logger: logger}
}

type createOrderRequest struct {
	SessionID string `json:"sessionId"`
	order.CheckoutForm
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if problems := body.Validate(); len(problems) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": problems})
		return
	}
	body.Normalize()

	store, ok := h.sessions.Get(body.SessionID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart session not found")
		return
	}

	snap := store.Snapshot()
	if len(snap.Items) == 0 {
		writeJSON(w, http.StatusConflict, map[string]string{
			"warning": "السلة فارغة، أضف منتجات أولاً",
		})
		return
	}

	total, err := strconv.ParseFloat(snap.Total, 64)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute total")
		return
	}

	o := &order.Order{
		CustomerName:    body.Name,
		CustomerPhone:   body.Phone,
		CustomerAddress: body.Address,
		Notes:           body.Notes,
		PaymentMethod:   body.PaymentMethod,
		TotalAmount:     total,
		Status:          order.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	for _, it := range snap.Items {
		o.Items = append(o.Items, order.Item{
			ProductID:   it.ProductID,
			ProductName: it.Title,
			Quantity:    it.Quantity,
			Price:       it.NumericPrice,
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Create(ctx, o); err != nil {
		h.logger.Printf("create order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderCreated(ctx, o); err != nil {
			// the order exists either way; notification is best-effort
			h.logger.Printf("publish OrderCreated %s: %v", o.ID, err)
		}
	}

	store.Clear()

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.GetByID(ctx, orderID)
	if err != nil {
		h.logger.Printf("get order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	if o == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, http.StatusOK, o)
}
