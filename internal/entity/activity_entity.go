package entity

import "time"

type ActivityType string

const (
	ActivityJobScheduled         ActivityType = "job_scheduled"
	ActivityJobInProgress        ActivityType = "job_in_progress"
	ActivityJobCompleted         ActivityType = "job_completed"
	ActivityJobCancelled         ActivityType = "job_cancelled"
	ActivityPaymentReceived      ActivityType = "payment_received"
	ActivityInventoryTransaction ActivityType = "inventory_transaction"
	ActivitySubscriptionCreated  ActivityType = "subscription_created"
	ActivitySubscriptionCanceled ActivityType = "subscription_canceled"
	ActivityReviewReceived       ActivityType = "review_received"
	ActivityReviewResponded      ActivityType = "review_responded"
	ActivityCustomerCreated      ActivityType = "customer_created"
)

// Activity is an append-only audit entry driving the SPA's recent-activity
// feed. Rows are never updated or deleted.
type Activity struct {
	Id          int
	Type        ActivityType
	CustomerId  *int
	JobId       *int
	InvoiceId   *int
	Description string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}
