package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	PropertyId   uuid.UUID `json:"property_id" validate:"required"`
	BuyerId      uuid.UUID `json:"buyer_id" validate:"required"`
	OfferedPrice float64   `json:"offered_price" validate:"required,gt=0"`
	Message      string    `json:"message"`
}

type CreateOfferResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type CounterOfferRequest struct {
	Id           uuid.UUID
	CounterPrice float64 `json:"counter_price" validate:"required,gt=0"`
}

type OfferResponse struct {
	Id           uuid.UUID  `json:"id"`
	PropertyId   uuid.UUID  `json:"property_id"`
	BuyerId      uuid.UUID  `json:"buyer_id"`
	OfferedPrice float64    `json:"offered_price"`
	CounterPrice *float64   `json:"counter_price,omitempty"`
	Status       string     `json:"status"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
