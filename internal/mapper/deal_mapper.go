package mapper

import (
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"
)

type DealMapper struct{}

func NewDealMapper() *DealMapper {
	return &DealMapper{}
}

func (m *DealMapper) ToEntity(d *model.Deal) *entity.Deal {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Deal{
		Id:             d.Id,
		PropertyId:     d.PropertyId,
		BuyerId:        d.BuyerId,
		SalePrice:      d.SalePrice,
		DownPayment:    d.DownPayment,
		MonthlyPayment: d.MonthlyPayment,
		TermMonths:     d.TermMonths,
		InterestRate:   d.InterestRate,
		Status:         entity.DealStatus(d.Status),
		StartDate:      d.StartDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *DealMapper) ToModel(d *entity.Deal) *model.Deal {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Deal{
		Id:             d.Id,
		PropertyId:     d.PropertyId,
		BuyerId:        d.BuyerId,
		SalePrice:      d.SalePrice,
		DownPayment:    d.DownPayment,
		MonthlyPayment: d.MonthlyPayment,
		TermMonths:     d.TermMonths,
		InterestRate:   d.InterestRate,
		Status:         string(d.Status),
		StartDate:      d.StartDate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *DealMapper) ToEntities(deals []*model.Deal) []*entity.Deal {
	entities := make([]*entity.Deal, len(deals))
	for i, d := range deals {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DealMapper) PaymentToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Payment{
		Id:            p.Id,
		DealId:        p.DealId,
		OrderId:       p.OrderId,
		Amount:        p.Amount,
		Status:        entity.PaymentStatus(p.Status),
		PaymentMethod: p.PaymentMethod,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *DealMapper) PaymentToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Payment{
		Id:            p.Id,
		DealId:        p.DealId,
		OrderId:       p.OrderId,
		Amount:        p.Amount,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *DealMapper) PaymentsToEntities(payments []*model.Payment) []*entity.Payment {
	entities := make([]*entity.Payment, len(payments))
	for i, p := range payments {
		entities[i] = m.PaymentToEntity(p)
	}
	return entities
}
