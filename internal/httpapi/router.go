package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/cart"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/middleware"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/order"
)

type Deps struct {
	Logger    *log.Logger
	Sessions  *cart.Manager
	Catalog   catalog.Repository
	Orders    order.Repository
	Publisher OrderEventsPublisher
	Completer Completer

	// Defaults stand in when the store_settings row is unreachable.
	Defaults catalog.Settings

	CORSAllowOrigins []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.CORS(d.CORSAllowOrigins))

	r.Get("/health", healthHandler)

	catalogH := NewCatalogHandler(d.Catalog, d.Logger)
	r.Route("/api", func(r chi.Router) {
		r.Get("/services", catalogH.ListServices)
		r.Get("/services/{id}", catalogH.GetService)
		r.Get("/categories", catalogH.ListCategories)
		r.Get("/settings", catalogH.GetSettings)

		cartH := NewCartHandler(d.Sessions, d.Catalog, d.Defaults, d.Logger)
		r.Route("/cart", func(r chi.Router) {
			r.Post("/", cartH.CreateSession)
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", cartH.GetCart)
				r.Delete("/", cartH.Clear)
				r.Post("/items", cartH.AddItem)
				r.Patch("/items/{itemId}", cartH.SetQuantity)
				r.Delete("/items/{itemId}", cartH.RemoveItem)
				r.Post("/presentation", cartH.TogglePresentation)
				r.Post("/whatsapp", cartH.WhatsAppOrder)
			})
		})

		orderH := NewOrderHandler(d.Orders, d.Sessions, d.Publisher, d.Logger)
		r.Post("/orders", orderH.CreateOrder)
		r.Get("/orders/{orderId}", orderH.GetOrder)

		chatH := NewChatHandler(d.Completer, d.Catalog, d.Defaults, d.Logger)
		r.Post("/chat", chatH.Chat)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}
