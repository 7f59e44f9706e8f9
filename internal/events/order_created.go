package events

import "time"

type OrderCreated struct {
	EventType     string             `json:"eventType"`
	OrderID       string             `json:"orderId"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderCreatedItem `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
	Timestamp     time.Time          `json:"timestamp"`
}

type OrderCreatedItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

const EventTypeOrderCreated = "OrderCreated"
