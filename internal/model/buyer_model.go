package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Buyer struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	BuyerType    string    `gorm:"type:varchar(50);index"`
	Source       string    `gorm:"type:varchar(100)"`
	IsVIP        bool      `gorm:"column:is_vip;default:false;index"`
	Unsubscribed bool      `gorm:"default:false"`
	// Areas of interest used by email-list criteria matching.
	PreferredAreas datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt      time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt              `gorm:"index"`
}

func (Buyer) TableName() string {
	return "buyers"
}

// BuyerActivity is an append-only audit trail of buyer interactions.
type BuyerActivity struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BuyerId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	EventType string         `gorm:"type:varchar(50);not null"`
	Detail    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (BuyerActivity) TableName() string {
	return "buyer_activities"
}
