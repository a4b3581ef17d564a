// FILE: internal/entity/offer_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "PENDING"
	OfferStatusCountered OfferStatus = "COUNTERED"
	OfferStatusAccepted  OfferStatus = "ACCEPTED"
	OfferStatusRejected  OfferStatus = "REJECTED"
	OfferStatusExpired   OfferStatus = "EXPIRED"
)

type Offer struct {
	Id           uuid.UUID
	PropertyId   uuid.UUID
	BuyerId      uuid.UUID
	OfferedPrice float64
	CounterPrice *float64
	Status       OfferStatus
	Message      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
