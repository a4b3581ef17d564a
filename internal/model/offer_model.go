package model

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PropertyId   uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerId      uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferedPrice float64   `gorm:"not null"`
	CounterPrice *float64
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Message      string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Offer) TableName() string {
	return "offers"
}
