package entity

import "time"

// Category groups products. Names are unique.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
