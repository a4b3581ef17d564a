package service

import (
	"context"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	minQualifyingIncome  = 30000.0
	minDownPaymentRatio  = 0.10
	creditScoreRangePoor = "Poor (below 580)"
)

type IQualificationService interface {
	Submit(ctx context.Context, req *dto.SubmitQualificationRequest) (*dto.SubmitQualificationResponse, error)
	List(ctx context.Context, qualifiedOnly bool) ([]*dto.QualificationResponse, error)
}

type qualificationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQualificationService(uowFactory unitofwork.RepositoryFactory) IQualificationService {
	return &qualificationService{
		uowFactory: uowFactory,
	}
}

// Evaluate applies the financing survey rules. The result is deterministic:
// same answers, same outcome, no operator judgement involved.
func Evaluate(req *dto.SubmitQualificationRequest, askingPrice float64) (bool, []string) {
	var disqualifiers []string

	if req.CreditScoreRange == creditScoreRangePoor {
		disqualifiers = append(disqualifiers, "Low credit score")
	}
	if !req.VerifiableIncome {
		disqualifiers = append(disqualifiers, "Unable to verify income")
	}
	if req.GrossAnnualIncome < minQualifyingIncome {
		disqualifiers = append(disqualifiers, "Insufficient income")
	}
	if !req.OpenCreditLines {
		disqualifiers = append(disqualifiers, "No established credit")
	}
	if askingPrice > 0 && req.DownPayment < askingPrice*minDownPaymentRatio {
		disqualifiers = append(disqualifiers, "Insufficient down payment")
	}

	return len(disqualifiers) == 0, disqualifiers
}

func (s *qualificationService) Submit(ctx context.Context, req *dto.SubmitQualificationRequest) (*dto.SubmitQualificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var askingPrice float64
	if req.PropertyId != nil {
		property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: *req.PropertyId})
		if err != nil {
			return nil, err
		}
		if property != nil {
			askingPrice = property.AskingPrice
		}
	}

	qualified, disqualifiers := Evaluate(req, askingPrice)

	qualification := entity.Qualification{
		Id:                   uuid.New(),
		PropertyId:           req.PropertyId,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Language:             req.Language,
		HomeUsage:            req.HomeUsage,
		HomePurchaseTiming:   req.HomePurchaseTiming,
		CurrentHomeOwnership: req.CurrentHomeOwnership,
		GrossAnnualIncome:    req.GrossAnnualIncome,
		DownPayment:          req.DownPayment,
		CreditScoreRange:     req.CreditScoreRange,
		OpenCreditLines:      req.OpenCreditLines,
		VerifiableIncome:     req.VerifiableIncome,
		Qualified:            qualified,
		Disqualifiers:        disqualifiers,
		CreatedAt:            time.Now(),
	}

	if err := uow.QualificationRepository().Create(ctx, &qualification); err != nil {
		return nil, err
	}

	return &dto.SubmitQualificationResponse{
		Id:            qualification.Id,
		Qualified:     qualified,
		Disqualifiers: disqualifiers,
	}, nil
}

func (s *qualificationService) List(ctx context.Context, qualifiedOnly bool) ([]*dto.QualificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if qualifiedOnly {
		specs = append(specs, specification.Filter("qualified", true))
	}

	qualifications, err := uow.QualificationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.QualificationResponse, len(qualifications))
	for i, q := range qualifications {
		res[i] = &dto.QualificationResponse{
			Id:                q.Id,
			PropertyId:        q.PropertyId,
			FirstName:         q.FirstName,
			LastName:          q.LastName,
			Email:             q.Email,
			Phone:             q.Phone,
			GrossAnnualIncome: q.GrossAnnualIncome,
			DownPayment:       q.DownPayment,
			CreditScoreRange:  q.CreditScoreRange,
			Qualified:         q.Qualified,
			Disqualifiers:     q.Disqualifiers,
			CreatedAt:         q.CreatedAt,
		}
	}
	return res, nil
}
