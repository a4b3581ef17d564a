package mapper

import (
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"
)

type OfferMapper struct{}

func NewOfferMapper() *OfferMapper {
	return &OfferMapper{}
}

func (m *OfferMapper) ToEntity(o *model.Offer) *entity.Offer {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Offer{
		Id:           o.Id,
		PropertyId:   o.PropertyId,
		BuyerId:      o.BuyerId,
		OfferedPrice: o.OfferedPrice,
		CounterPrice: o.CounterPrice,
		Status:       entity.OfferStatus(o.Status),
		Message:      o.Message,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *OfferMapper) ToModel(o *entity.Offer) *model.Offer {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Offer{
		Id:           o.Id,
		PropertyId:   o.PropertyId,
		BuyerId:      o.BuyerId,
		OfferedPrice: o.OfferedPrice,
		CounterPrice: o.CounterPrice,
		Status:       string(o.Status),
		Message:      o.Message,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *OfferMapper) ToEntities(offers []*model.Offer) []*entity.Offer {
	entities := make([]*entity.Offer, len(offers))
	for i, o := range offers {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
