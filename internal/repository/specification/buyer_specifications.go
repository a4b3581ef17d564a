package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByBuyerID struct {
	BuyerID uuid.UUID
}

func (s ByBuyerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("buyer_id = ?", s.BuyerID)
}

type ByBuyerTypes struct {
	BuyerTypes []string
}

func (s ByBuyerTypes) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("buyer_type IN ?", s.BuyerTypes)
}

type VIPOnly struct{}

func (s VIPOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_vip = true")
}

// Subscribed excludes buyers who opted out of email.
type Subscribed struct{}

func (s Subscribed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("unsubscribed = false")
}

type ByListID struct {
	ListID uuid.UUID
}

func (s ByListID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("list_id = ?", s.ListID)
}
