package order

import "time"

type Item struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID              string    `json:"orderId"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAddress string    `json:"customerAddress"`
	Notes           string    `json:"notes,omitempty"`
	PaymentMethod   string    `json:"paymentMethod"`
	Items           []Item    `json:"items"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
