package entity

import "time"

type Review struct {
	Id           int
	CustomerId   int
	JobId        *int
	Rating       int // 1..5
	Comment      string
	Source       string // "google", "yelp", "direct", ...
	Responded    bool
	ResponseText string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
