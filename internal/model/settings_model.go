package model

import (
	"time"

	"github.com/google/uuid"
)

// Settings is a singleton row of operator-editable configuration.
type Settings struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SmtpServer         string    `gorm:"type:varchar(255)"`
	SmtpPort           int       `gorm:"default:587"`
	SmtpUser           string    `gorm:"type:varchar(255)"`
	SmtpPassword       string    `gorm:"type:varchar(255)"`
	AdminEmail         string    `gorm:"type:varchar(255)"`
	OfferAlertsEnabled bool      `gorm:"default:true"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Settings) TableName() string {
	return "settings"
}
