package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDealRequest struct {
	PropertyId     uuid.UUID `json:"property_id" validate:"required"`
	BuyerId        uuid.UUID `json:"buyer_id" validate:"required"`
	SalePrice      float64   `json:"sale_price" validate:"required,gt=0"`
	DownPayment    float64   `json:"down_payment" validate:"gte=0"`
	MonthlyPayment float64   `json:"monthly_payment" validate:"required,gt=0"`
	TermMonths     int       `json:"term_months" validate:"required,gt=0"`
	InterestRate   float64   `json:"interest_rate" validate:"gte=0"`
	StartDate      time.Time `json:"start_date" validate:"required"`
}

type CreateDealResponse struct {
	Id uuid.UUID `json:"id"`
}

type DealResponse struct {
	Id             uuid.UUID  `json:"id"`
	PropertyId     uuid.UUID  `json:"property_id"`
	BuyerId        uuid.UUID  `json:"buyer_id"`
	SalePrice      float64    `json:"sale_price"`
	DownPayment    float64    `json:"down_payment"`
	MonthlyPayment float64    `json:"monthly_payment"`
	TermMonths     int        `json:"term_months"`
	InterestRate   float64    `json:"interest_rate"`
	Status         string     `json:"status"`
	StartDate      time.Time  `json:"start_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type CreatePaymentRequest struct {
	DealId uuid.UUID `json:"deal_id" validate:"required"`
	Amount float64   `json:"amount" validate:"required,gt=0"`
}

type CreatePaymentResponse struct {
	OrderId     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
	Token       string `json:"token"`
}

type PaymentNotificationRequest struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
}

type PaymentResponse struct {
	Id            uuid.UUID  `json:"id"`
	DealId        uuid.UUID  `json:"deal_id"`
	OrderId       string     `json:"order_id"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
