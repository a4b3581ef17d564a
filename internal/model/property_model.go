package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId       *uuid.UUID `gorm:"type:uuid;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	StreetAddress string    `gorm:"type:varchar(255);not null"`
	City          string    `gorm:"type:varchar(100);not null;index"`
	County        string    `gorm:"type:varchar(100);index"`
	State         string    `gorm:"type:varchar(50);not null"`
	Zip           string    `gorm:"type:varchar(20)"`
	Area          string    `gorm:"type:varchar(100);index"`
	Apn           string    `gorm:"type:varchar(100)"`
	AcreageSqft   float64
	AskingPrice   float64   `gorm:"not null"`
	MinPrice      float64
	Financing     bool      `gorm:"default:false"`
	Status        string    `gorm:"type:varchar(50);not null;default:'Available';index"`
	Featured      bool      `gorm:"default:false"`
	ViewCount     int64     `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Property) TableName() string {
	return "properties"
}
