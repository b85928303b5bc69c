package entity

import "time"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOther    PaymentMethod = "other"
)

type Invoice struct {
	Id            int
	JobId         int
	InvoiceNumber string
	Subtotal      float64
	Tax           float64
	Discount      float64
	Total         float64
	Paid          bool
	PaidDate      *time.Time
	PaidAmount    float64
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Payment rows are immutable once created.
type Payment struct {
	Id            int
	InvoiceId     int
	Amount        float64
	Method        PaymentMethod
	TransactionId string
	Date          time.Time
	CreatedAt     time.Time
}
