package cart

import "github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/price"

// Item is one line of the cart. DisplayPrice keeps the original catalog text,
// NumericPrice is the normalized amount used for totals.
type Item struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	DisplayPrice string  `json:"displayPrice"`
	NumericPrice float64 `json:"numericPrice"`
	Quantity     int     `json:"quantity"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	ProductID    string  `json:"productId,omitempty"`
}

// Candidate is the input for AddItem, before a line item exists for it.
type Candidate struct {
	Title     string
	Price     price.Normalized
	ImageURL  string
	ProductID string
}

// Presentation reports whether the cart panel is visible and whether that
// visibility was triggered automatically (and so will expire on its own).
type Presentation struct {
	IsOpen        bool `json:"isOpen"`
	IsAutoShowing bool `json:"isAutoShowing"`
}

// Snapshot is the derived view of the cart: items in insertion order plus the
// totals recomputed from them. It is never stored.
type Snapshot struct {
	Items        []Item       `json:"items"`
	ItemCount    int          `json:"itemCount"`
	Subtotal     string       `json:"subtotal"`
	ShippingFee  float64      `json:"shippingFee"`
	Total        string       `json:"total"`
	Presentation Presentation `json:"presentation"`
}
