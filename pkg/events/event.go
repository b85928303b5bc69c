package events

import "time"

// Event is the contract for everything published on the outbound bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "INVOICE_PAID").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation used by the services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds an event stamped with the current time.
func New(eventType string, data map[string]interface{}) Event {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// Event codes emitted by the services.
const (
	TypeInvoicePaid          = "INVOICE_PAID"
	TypeJobCompleted         = "JOB_COMPLETED"
	TypeInventoryLowStock    = "INVENTORY_LOW_STOCK"
	TypeSubscriptionActive   = "SUBSCRIPTION_ACTIVE"
	TypeSubscriptionCanceled = "SUBSCRIPTION_CANCELED"
)
