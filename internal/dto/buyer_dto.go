package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBuyerRequest struct {
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone"`
	BuyerType      string   `json:"buyer_type" validate:"required,oneof=CashBuyer Builder Developer Realtor Investor Wholesaler"`
	Source         string   `json:"source"`
	IsVIP          bool     `json:"is_vip"`
	PreferredAreas []string `json:"preferred_areas"`
}

type CreateBuyerResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateBuyerRequest struct {
	Id             uuid.UUID
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	Phone          string   `json:"phone"`
	BuyerType      string   `json:"buyer_type" validate:"required,oneof=CashBuyer Builder Developer Realtor Investor Wholesaler"`
	IsVIP          bool     `json:"is_vip"`
	PreferredAreas []string `json:"preferred_areas"`
}

type BuyerResponse struct {
	Id             uuid.UUID  `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	BuyerType      string     `json:"buyer_type"`
	Source         string     `json:"source"`
	IsVIP          bool       `json:"is_vip"`
	Unsubscribed   bool       `json:"unsubscribed"`
	PreferredAreas []string   `json:"preferred_areas"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type BuyerActivityResponse struct {
	Id        uuid.UUID              `json:"id"`
	EventType string                 `json:"event_type"`
	Detail    map[string]interface{} `json:"detail"`
	CreatedAt time.Time              `json:"created_at"`
}
