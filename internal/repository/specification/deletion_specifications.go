package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByDeletionStatus struct {
	Status string
}

func (s ByDeletionStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByBatchID struct {
	BatchID uuid.UUID
}

func (s ByBatchID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("batch_id = ?", s.BatchID)
}
