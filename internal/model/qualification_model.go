package model

import (
	"time"

	"github.com/google/uuid"
)

// Qualification is one submitted financing survey.
type Qualification struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PropertyId         *uuid.UUID `gorm:"type:uuid;index"`
	FirstName          string     `gorm:"type:varchar(100);not null"`
	LastName           string     `gorm:"type:varchar(100);not null"`
	Email              string     `gorm:"type:varchar(255);not null;index"`
	Phone              string     `gorm:"type:varchar(50)"`
	Language           string     `gorm:"type:varchar(50)"`
	HomeUsage          string     `gorm:"type:varchar(100)"`
	HomePurchaseTiming string     `gorm:"type:varchar(100)"`
	CurrentHomeOwnership string   `gorm:"type:varchar(100)"`
	GrossAnnualIncome  float64
	DownPayment        float64
	CreditScoreRange   string `gorm:"type:varchar(50)"`
	OpenCreditLines    bool
	VerifiableIncome   bool
	Qualified          bool      `gorm:"index"`
	Disqualifiers      string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (Qualification) TableName() string {
	return "qualifications"
}
