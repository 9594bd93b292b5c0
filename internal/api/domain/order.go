package domain

import "time"

type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	CreatedAt time.Time
}

// OrderItem is one product line within an order.
type OrderItem struct {
	ProductID string
	Quantity  int
}
