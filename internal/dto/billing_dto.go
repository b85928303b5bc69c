package dto

import "time"

type CreateInvoiceRequest struct {
	JobId    int     `json:"job_id" validate:"required,gt=0"`
	Subtotal float64 `json:"subtotal" validate:"gte=0"`
	Tax      float64 `json:"tax" validate:"gte=0"`
	Discount float64 `json:"discount" validate:"gte=0"`
	Total    float64 `json:"total" validate:"required,gt=0"`
	Notes    string  `json:"notes"`
}

type UpdateInvoiceRequest struct {
	Subtotal *float64 `json:"subtotal" validate:"omitempty,gte=0"`
	Tax      *float64 `json:"tax" validate:"omitempty,gte=0"`
	Discount *float64 `json:"discount" validate:"omitempty,gte=0"`
	Total    *float64 `json:"total" validate:"omitempty,gt=0"`
	Notes    *string  `json:"notes"`
}

type InvoiceResponse struct {
	Id            int        `json:"id"`
	JobId         int        `json:"job_id"`
	InvoiceNumber string     `json:"invoice_number"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	Paid          bool       `json:"paid"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaidAmount    float64    `json:"paid_amount"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreatePaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"required,oneof=cash card transfer other"`
	TransactionId string  `json:"transaction_id"`
}

type PaymentResponse struct {
	Id            int       `json:"id"`
	InvoiceId     int       `json:"invoice_id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	TransactionId string    `json:"transaction_id,omitempty"`
	Date          time.Time `json:"date"`
}
