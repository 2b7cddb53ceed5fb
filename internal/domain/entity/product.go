package entity

import "time"

// Product is a catalog item belonging to exactly one category.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Quantity    int
	Description string
	CategoryID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
