package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDeletionRequest struct {
	PropertyId uuid.UUID
	Reason     string `json:"reason"`
}

type CreateDeletionResponse struct {
	Id        uuid.UUID `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type BulkDeletionRequest struct {
	PropertyIds []uuid.UUID `json:"property_ids" validate:"required,min=1"`
	Reason      string      `json:"reason"`
}

type BulkDeletionResponse struct {
	BatchId   uuid.UUID   `json:"batch_id"`
	Requested []uuid.UUID `json:"requested"`
	Skipped   []uuid.UUID `json:"skipped"` // not deletable or already pending
}

type DeletionRequestResponse struct {
	Id              uuid.UUID  `json:"id"`
	PropertyId      uuid.UUID  `json:"property_id"`
	BatchId         *uuid.UUID `json:"batch_id,omitempty"`
	PropertyAddress string     `json:"property_address"`
	Reason          *string    `json:"reason,omitempty"`
	RequestedByName string     `json:"requested_by_name"`
	Status          string     `json:"status"`
	ExpiresAt       time.Time  `json:"expires_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ResolveDeletionResponse struct {
	PropertyId uuid.UUID `json:"property_id"`
	Status     string    `json:"status"`
}
