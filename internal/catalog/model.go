package catalog

import "time"

// Service is a sellable catalog entry. Price is kept as the raw text the
// store owner entered (localized digits, currency suffixes); normalization
// happens when the item enters a cart.
type Service struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"categoryId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings is the single store configuration row.
type Settings struct {
	StoreName      string  `json:"storeName"`
	WhatsAppNumber string  `json:"whatsappNumber"`
	CurrencySuffix string  `json:"currencySuffix"`
	ShippingFee    float64 `json:"shippingFee"`
}
