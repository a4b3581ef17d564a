package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPropertyID struct {
	PropertyID uuid.UUID
}

func (s ByPropertyID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("property_id = ?", s.PropertyID)
}

type ByPropertyIDs struct {
	PropertyIDs []uuid.UUID
}

func (s ByPropertyIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("property_id IN ?", s.PropertyIDs)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCity struct {
	City string
}

func (s ByCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("city = ?", s.City)
}

type ByArea struct {
	Area string
}

func (s ByArea) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("area = ?", s.Area)
}

type FeaturedOnly struct{}

func (s FeaturedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("featured = true")
}
