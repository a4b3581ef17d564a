// FILE: internal/entity/deletion_request_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type DeletionStatus string

const (
	DeletionStatusPending  DeletionStatus = "PENDING"
	DeletionStatusApproved DeletionStatus = "APPROVED"
	DeletionStatusExpired  DeletionStatus = "EXPIRED"
	DeletionStatusRejected DeletionStatus = "REJECTED"
)

// Terminal reports whether the status is a sink: once a request leaves
// PENDING it never changes again.
func (s DeletionStatus) Terminal() bool {
	return s != DeletionStatusPending
}

// DeletionRequest is one pending or resolved request to remove a listing.
// Token is single-use and globally unique; BatchId groups the requests
// created by one bulk submission.
type DeletionRequest struct {
	Id                  uuid.UUID
	PropertyId          uuid.UUID
	BatchId             *uuid.UUID
	Token               string
	Reason              *string
	RequestedBy         string
	RequestedByIdentity string
	RequestedByName     string
	Status              DeletionStatus
	ExpiresAt           time.Time
	ApprovedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// ExpiredAt reports whether the token TTL has elapsed at the given instant.
func (r *DeletionRequest) ExpiredAt(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
