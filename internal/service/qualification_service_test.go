package service

import (
	"reflect"
	"testing"

	"landivo-be/internal/dto"
)

func TestEvaluate(t *testing.T) {
	// A baseline applicant that passes every rule.
	base := dto.SubmitQualificationRequest{
		CreditScoreRange:  "Good (670-739)",
		GrossAnnualIncome: 85000,
		DownPayment:       5000,
		OpenCreditLines:   true,
		VerifiableIncome:  true,
	}

	tests := []struct {
		name          string
		mutate        func(r *dto.SubmitQualificationRequest)
		askingPrice   float64
		qualified     bool
		disqualifiers []string
	}{
		{
			name:        "passes all rules",
			mutate:      func(r *dto.SubmitQualificationRequest) {},
			askingPrice: 24500,
			qualified:   true,
		},
		{
			name: "poor credit score",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.CreditScoreRange = "Poor (below 580)"
			},
			askingPrice:   24500,
			qualified:     false,
			disqualifiers: []string{"Low credit score"},
		},
		{
			name: "income below threshold",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.GrossAnnualIncome = 29999
			},
			askingPrice:   24500,
			qualified:     false,
			disqualifiers: []string{"Insufficient income"},
		},
		{
			name: "income exactly at threshold passes",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.GrossAnnualIncome = 30000
			},
			askingPrice: 24500,
			qualified:   true,
		},
		{
			name: "unverifiable income",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.VerifiableIncome = false
			},
			askingPrice:   24500,
			qualified:     false,
			disqualifiers: []string{"Unable to verify income"},
		},
		{
			name: "no open credit lines",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.OpenCreditLines = false
			},
			askingPrice:   24500,
			qualified:     false,
			disqualifiers: []string{"No established credit"},
		},
		{
			name: "down payment under ten percent",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.DownPayment = 2000
			},
			askingPrice:   24500,
			qualified:     false,
			disqualifiers: []string{"Insufficient down payment"},
		},
		{
			name: "down payment rule skipped without a listing price",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.DownPayment = 0
			},
			askingPrice: 0,
			qualified:   true,
		},
		{
			name: "multiple failures accumulate",
			mutate: func(r *dto.SubmitQualificationRequest) {
				r.CreditScoreRange = "Poor (below 580)"
				r.GrossAnnualIncome = 12000
				r.VerifiableIncome = false
				r.OpenCreditLines = false
				r.DownPayment = 0
			},
			askingPrice: 24500,
			qualified:   false,
			disqualifiers: []string{
				"Low credit score",
				"Unable to verify income",
				"Insufficient income",
				"No established credit",
				"Insufficient down payment",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			qualified, disqualifiers := Evaluate(&req, tt.askingPrice)
			if qualified != tt.qualified {
				t.Errorf("qualified = %v, want %v", qualified, tt.qualified)
			}
			if !reflect.DeepEqual(disqualifiers, tt.disqualifiers) {
				t.Errorf("disqualifiers = %v, want %v", disqualifiers, tt.disqualifiers)
			}
		})
	}
}
