package httpapi_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/cart"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/httpapi"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/order"
)

type fakeCatalog struct {
	listFunc     func(ctx context.Context, f catalog.Filter) ([]catalog.Service, error)
	getFunc      func(ctx context.Context, id string) (catalog.Service, error)
	catsFunc     func(ctx context.Context) ([]catalog.Category, error)
	settingsFunc func(ctx context.Context) (catalog.Settings, error)
}

func (f *fakeCatalog) ListServices(ctx context.Context, fl catalog.Filter) ([]catalog.Service, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, fl)
	}
	return []catalog.Service{}, nil
}

func (f *fakeCatalog) GetService(ctx context.Context, id string) (catalog.Service, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return catalog.Service{}, catalog.ErrNotFound
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	if f.catsFunc != nil {
		return f.catsFunc(ctx)
	}
	return []catalog.Category{}, nil
}

func (f *fakeCatalog) GetSettings(ctx context.Context) (catalog.Settings, error) {
	if f.settingsFunc != nil {
		return f.settingsFunc(ctx)
	}
	return catalog.Settings{
		StoreName:      "سفير العطور",
		WhatsAppNumber: "201027381559",
		CurrencySuffix: "ج",
		ShippingFee:    100,
	}, nil
}

type fakeOrders struct {
	createFunc func(ctx context.Context, o *order.Order) error
	getFunc    func(ctx context.Context, orderID string) (*order.Order, error)
	listFunc   func(ctx context.Context, limit int) ([]order.Order, error)
}

func (f *fakeOrders) Create(ctx context.Context, o *order.Order) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, o)
	}
	return nil
}

func (f *fakeOrders) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, orderID)
	}
	return nil, nil
}

func (f *fakeOrders) ListRecent(ctx context.Context, limit int) ([]order.Order, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, limit)
	}
	return nil, nil
}

type fakePublisher struct {
	published []*order.Order
	err       error
}

func (f *fakePublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, o)
	return nil
}

type fakeCompleter func(ctx context.Context, systemPrompt, userMessage string) (string, error)

func (f fakeCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return f(ctx, systemPrompt, userMessage)
}

type routerOption func(*httpapi.Deps)

func newTestRouter(opts ...routerOption) (http.Handler, *cart.Manager) {
	sessions := cart.NewManager(100, 0, time.Hour)
	d := httpapi.Deps{
		Logger:   log.New(io.Discard, "", 0),
		Sessions: sessions,
		Catalog:  &fakeCatalog{},
		Orders:   &fakeOrders{},
		Completer: fakeCompleter(func(ctx context.Context, system, user string) (string, error) {
			return "ok", nil
		}),
		Defaults: catalog.Settings{
			WhatsAppNumber: "201000000000",
			CurrencySuffix: "ج",
			ShippingFee:    100,
		},
		CORSAllowOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(&d)
	}
	return httpapi.NewRouter(d), sessions
}
