// FILE: internal/entity/property_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyStatusAvailable    PropertyStatus = "Available"
	PropertyStatusPending      PropertyStatus = "Pending"
	PropertyStatusSold         PropertyStatus = "Sold"
	PropertyStatusNotAvailable PropertyStatus = "Not Available"
	PropertyStatusTesting      PropertyStatus = "Testing"
)

// DeletionAllowed reports whether a listing in this status may be the
// target of a deletion request. Live listings must be taken off the
// market first.
func (s PropertyStatus) DeletionAllowed() bool {
	return s == PropertyStatusSold || s == PropertyStatusNotAvailable
}

type Property struct {
	Id            uuid.UUID
	OwnerId       *uuid.UUID
	Title         string
	Description   string
	StreetAddress string
	City          string
	County        string
	State         string
	Zip           string
	Area          string
	Apn           string
	AcreageSqft   float64
	AskingPrice   float64
	MinPrice      float64
	Financing     bool
	Status        PropertyStatus
	Featured      bool
	ViewCount     int64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

func (p *Property) FullAddress() string {
	return p.StreetAddress + ", " + p.City + ", " + p.State + " " + p.Zip
}
