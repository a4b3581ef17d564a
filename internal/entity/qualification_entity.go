// FILE: internal/entity/qualification_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Qualification struct {
	Id                   uuid.UUID
	PropertyId           *uuid.UUID
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	Language             string
	HomeUsage            string
	HomePurchaseTiming   string
	CurrentHomeOwnership string
	GrossAnnualIncome    float64
	DownPayment          float64
	CreditScoreRange     string
	OpenCreditLines      bool
	VerifiableIncome     bool
	Qualified            bool
	Disqualifiers        []string
	CreatedAt            time.Time
}
