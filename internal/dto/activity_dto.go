package dto

import "time"

type ActivityResponse struct {
	Id          int                    `json:"id"`
	Type        string                 `json:"type"`
	CustomerId  *int                   `json:"customer_id,omitempty"`
	JobId       *int                   `json:"job_id,omitempty"`
	InvoiceId   *int                   `json:"invoice_id,omitempty"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}
