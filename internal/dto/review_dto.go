package dto

import "time"

type CreateReviewRequest struct {
	CustomerId int    `json:"customer_id" validate:"required,gt=0"`
	JobId      *int   `json:"job_id"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
	Source     string `json:"source"`
}

type RespondReviewRequest struct {
	ResponseText string `json:"response_text" validate:"required"`
}

type ReviewResponse struct {
	Id           int       `json:"id"`
	CustomerId   int       `json:"customer_id"`
	JobId        *int      `json:"job_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	Source       string    `json:"source,omitempty"`
	Responded    bool      `json:"responded"`
	ResponseText string    `json:"response_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
