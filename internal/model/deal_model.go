package model

import (
	"time"

	"github.com/google/uuid"
)

// Deal is a closed sale, optionally seller-financed with monthly instalments.
type Deal struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PropertyId     uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerId        uuid.UUID `gorm:"type:uuid;not null;index"`
	SalePrice      float64   `gorm:"not null"`
	DownPayment    float64
	MonthlyPayment float64
	TermMonths     int
	InterestRate   float64
	Status         string    `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	StartDate      time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Deal) TableName() string {
	return "deals"
}

type Payment struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DealId        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId       string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Amount        float64   `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentMethod string    `gorm:"type:varchar(50)"`
	PaidAt        *time.Time
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
