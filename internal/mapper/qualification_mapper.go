package mapper

import (
	"strings"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"
)

type QualificationMapper struct{}

func NewQualificationMapper() *QualificationMapper {
	return &QualificationMapper{}
}

func (m *QualificationMapper) ToEntity(q *model.Qualification) *entity.Qualification {
	if q == nil {
		return nil
	}

	var disqualifiers []string
	if q.Disqualifiers != "" {
		disqualifiers = strings.Split(q.Disqualifiers, ";")
	}

	return &entity.Qualification{
		Id:                   q.Id,
		PropertyId:           q.PropertyId,
		FirstName:            q.FirstName,
		LastName:             q.LastName,
		Email:                q.Email,
		Phone:                q.Phone,
		Language:             q.Language,
		HomeUsage:            q.HomeUsage,
		HomePurchaseTiming:   q.HomePurchaseTiming,
		CurrentHomeOwnership: q.CurrentHomeOwnership,
		GrossAnnualIncome:    q.GrossAnnualIncome,
		DownPayment:          q.DownPayment,
		CreditScoreRange:     q.CreditScoreRange,
		OpenCreditLines:      q.OpenCreditLines,
		VerifiableIncome:     q.VerifiableIncome,
		Qualified:            q.Qualified,
		Disqualifiers:        disqualifiers,
		CreatedAt:            q.CreatedAt,
	}
}

func (m *QualificationMapper) ToModel(q *entity.Qualification) *model.Qualification {
	if q == nil {
		return nil
	}

	return &model.Qualification{
		Id:                   q.Id,
		PropertyId:           q.PropertyId,
		FirstName:            q.FirstName,
		LastName:             q.LastName,
		Email:                q.Email,
		Phone:                q.Phone,
		Language:             q.Language,
		HomeUsage:            q.HomeUsage,
		HomePurchaseTiming:   q.HomePurchaseTiming,
		CurrentHomeOwnership: q.CurrentHomeOwnership,
		GrossAnnualIncome:    q.GrossAnnualIncome,
		DownPayment:          q.DownPayment,
		CreditScoreRange:     q.CreditScoreRange,
		OpenCreditLines:      q.OpenCreditLines,
		VerifiableIncome:     q.VerifiableIncome,
		Qualified:            q.Qualified,
		Disqualifiers:        strings.Join(q.Disqualifiers, ";"),
		CreatedAt:            q.CreatedAt,
	}
}

func (m *QualificationMapper) ToEntities(qs []*model.Qualification) []*entity.Qualification {
	entities := make([]*entity.Qualification, len(qs))
	for i, q := range qs {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
