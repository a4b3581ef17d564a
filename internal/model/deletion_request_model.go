package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyDeletionRequest is one pending or resolved request to remove a
// listing. The token is single-use; a partial unique index on
// (property_id) WHERE status = 'PENDING' (created by cmd/migrate) keeps at
// most one live request per property.
type PropertyDeletionRequest struct {
	Id                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PropertyId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	BatchId             *uuid.UUID `gorm:"type:uuid;index"`
	Token               string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Reason              *string    `gorm:"type:text"`
	RequestedBy         string     `gorm:"type:varchar(255)"`
	RequestedByIdentity string     `gorm:"type:varchar(255)"`
	RequestedByName     string     `gorm:"type:varchar(255)"`
	Status              string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ExpiresAt           time.Time  `gorm:"not null"`
	ApprovedAt          *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (PropertyDeletionRequest) TableName() string {
	return "property_deletion_requests"
}
