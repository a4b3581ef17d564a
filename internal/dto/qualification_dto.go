package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitQualificationRequest struct {
	PropertyId           *uuid.UUID `json:"property_id"`
	FirstName            string     `json:"first_name" validate:"required"`
	LastName             string     `json:"last_name" validate:"required"`
	Email                string     `json:"email" validate:"required,email"`
	Phone                string     `json:"phone"`
	Language             string     `json:"language"`
	HomeUsage            string     `json:"home_usage"`
	HomePurchaseTiming   string     `json:"home_purchase_timing"`
	CurrentHomeOwnership string     `json:"current_home_ownership"`
	GrossAnnualIncome    float64    `json:"gross_annual_income" validate:"gte=0"`
	DownPayment          float64    `json:"down_payment" validate:"gte=0"`
	CreditScoreRange     string     `json:"credit_score_range" validate:"required"`
	OpenCreditLines      bool       `json:"open_credit_lines"`
	VerifiableIncome     bool       `json:"verifiable_income"`
}

type SubmitQualificationResponse struct {
	Id            uuid.UUID `json:"id"`
	Qualified     bool      `json:"qualified"`
	Disqualifiers []string  `json:"disqualifiers,omitempty"`
}

type QualificationResponse struct {
	Id                 uuid.UUID  `json:"id"`
	PropertyId         *uuid.UUID `json:"property_id,omitempty"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	GrossAnnualIncome  float64    `json:"gross_annual_income"`
	DownPayment        float64    `json:"down_payment"`
	CreditScoreRange   string     `json:"credit_score_range"`
	Qualified          bool       `json:"qualified"`
	Disqualifiers      []string   `json:"disqualifiers,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
