package dto

import "time"

type CreateMembershipPlanRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	MonthlyPrice float64  `json:"monthly_price" validate:"required,gt=0"`
	AnnualPrice  float64  `json:"annual_price" validate:"required,gt=0"`
	Features     []string `json:"features"`
}

type UpdateMembershipPlanRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	MonthlyPrice *float64  `json:"monthly_price" validate:"omitempty,gt=0"`
	AnnualPrice  *float64  `json:"annual_price" validate:"omitempty,gt=0"`
	Features     *[]string `json:"features"`
	IsActive     *bool     `json:"is_active"`
}

type MembershipPlanResponse struct {
	Id           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	MonthlyPrice float64  `json:"monthly_price"`
	AnnualPrice  float64  `json:"annual_price"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
}

type CreateSubscriptionRequest struct {
	CustomerId   int    `json:"customer_id" validate:"required,gt=0"`
	PlanId       int    `json:"plan_id" validate:"required,gt=0"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly annual"`
}

type SubscriptionResponse struct {
	Id           int        `json:"id"`
	CustomerId   int        `json:"customer_id"`
	PlanId       int        `json:"plan_id"`
	Status       string     `json:"status"`
	BillingCycle string     `json:"billing_cycle"`
	StartDate    time.Time  `json:"start_date"`
	CanceledAt   *time.Time `json:"canceled_at,omitempty"`
}

type CheckoutRequest struct {
	CustomerId   int    `json:"customer_id" validate:"required,gt=0"`
	PlanId       int    `json:"plan_id" validate:"required,gt=0"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly annual"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// GatewayWebhookRequest mirrors the payment gateway's HTTP notification.
type GatewayWebhookRequest struct {
	OrderId           string `json:"order_id"`
	TransactionId     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status"`
}
