// FILE: internal/entity/deal_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type DealStatus string

const (
	DealStatusActive    DealStatus = "ACTIVE"
	DealStatusCompleted DealStatus = "COMPLETED"
	DealStatusDefaulted DealStatus = "DEFAULTED"
)

type Deal struct {
	Id             uuid.UUID
	PropertyId     uuid.UUID
	BuyerId        uuid.UUID
	SalePrice      float64
	DownPayment    float64
	MonthlyPayment float64
	TermMonths     int
	InterestRate   float64
	Status         DealStatus
	StartDate      time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	Id            uuid.UUID
	DealId        uuid.UUID
	OrderId       string
	Amount        float64
	Status        PaymentStatus
	PaymentMethod string
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
