package domain

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	CreatedAt   time.Time
}
