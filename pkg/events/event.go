package events

import "time"

// Domain event codes published on the bus.
const (
	TypeOfferCreated      = "OFFER_CREATED"
	TypeDeletionRequested = "DELETION_REQUESTED"
	TypeDeletionApproved  = "DELETION_APPROVED"
	TypeDeletionRejected  = "DELETION_REJECTED"
	TypeBuyerRegistered   = "BUYER_REGISTERED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "OFFER_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

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
