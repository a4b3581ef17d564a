// FILE: internal/entity/buyer_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type BuyerType string

const (
	BuyerTypeCashBuyer  BuyerType = "CashBuyer"
	BuyerTypeBuilder    BuyerType = "Builder"
	BuyerTypeDeveloper  BuyerType = "Developer"
	BuyerTypeRealtor    BuyerType = "Realtor"
	BuyerTypeInvestor   BuyerType = "Investor"
	BuyerTypeWholesaler BuyerType = "Wholesaler"
)

type Buyer struct {
	Id             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	BuyerType      BuyerType
	Source         string
	IsVIP          bool
	Unsubscribed   bool
	PreferredAreas []string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

func (b *Buyer) FullName() string {
	return b.FirstName + " " + b.LastName
}

type BuyerActivity struct {
	Id        uuid.UUID
	BuyerId   uuid.UUID
	EventType string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
