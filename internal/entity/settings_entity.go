// FILE: internal/entity/settings_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	Id                 uuid.UUID
	SmtpServer         string
	SmtpPort           int
	SmtpUser           string
	SmtpPassword       string
	AdminEmail         string
	OfferAlertsEnabled bool
	UpdatedAt          time.Time
}
