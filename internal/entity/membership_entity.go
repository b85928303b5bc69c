package entity

import "time"

type SubscriptionStatus string
type BillingCycle string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"

	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
)

type MembershipPlan struct {
	Id           int
	Name         string
	Description  string
	MonthlyPrice float64
	AnnualPrice  float64
	Features     []string
	IsActive     bool
	CreatedAt    time.Time
}

// CustomerSubscription links a customer to a membership plan. A customer has
// at most one active subscription; creating a new one cancels the prior
// active one first.
type CustomerSubscription struct {
	Id                   int
	CustomerId           int
	PlanId               int
	Status               SubscriptionStatus
	BillingCycle         BillingCycle
	GatewayOrderId       *string
	GatewayTransactionId *string
	StartDate            time.Time
	CanceledAt           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
