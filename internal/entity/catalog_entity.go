package entity

import "time"

// Service is a catalog entry for a detailing package (wash, wax, ceramic
// coating, ...). Prices here are the current list prices; jobs snapshot the
// price at booking time into their line items.
type Service struct {
	Id              int
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Color           string
	IsActive        bool
	CreatedAt       time.Time
}
