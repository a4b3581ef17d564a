package mapper

import (
	"encoding/json"
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BuyerMapper struct{}

func NewBuyerMapper() *BuyerMapper {
	return &BuyerMapper{}
}

func (m *BuyerMapper) ToEntity(b *model.Buyer) *entity.Buyer {
	if b == nil {
		return nil
	}

	var deletedAt *time.Time
	if b.DeletedAt.Valid {
		t := b.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.Buyer{
		Id:             b.Id,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		Phone:          b.Phone,
		BuyerType:      entity.BuyerType(b.BuyerType),
		Source:         b.Source,
		IsVIP:          b.IsVIP,
		Unsubscribed:   b.Unsubscribed,
		PreferredAreas: []string(b.PreferredAreas),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      b.DeletedAt.Valid,
	}
}

func (m *BuyerMapper) ToModel(b *entity.Buyer) *model.Buyer {
	if b == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if b.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *b.DeletedAt, Valid: true}
	} else if b.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.Buyer{
		Id:             b.Id,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		Phone:          b.Phone,
		BuyerType:      string(b.BuyerType),
		Source:         b.Source,
		IsVIP:          b.IsVIP,
		Unsubscribed:   b.Unsubscribed,
		PreferredAreas: datatypes.JSONSlice[string](b.PreferredAreas),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *BuyerMapper) ToEntities(buyers []*model.Buyer) []*entity.Buyer {
	entities := make([]*entity.Buyer, len(buyers))
	for i, b := range buyers {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

func (m *BuyerMapper) ActivityToEntity(a *model.BuyerActivity) *entity.BuyerActivity {
	if a == nil {
		return nil
	}

	detail := map[string]interface{}{}
	if len(a.Detail) > 0 {
		_ = json.Unmarshal(a.Detail, &detail)
	}

	return &entity.BuyerActivity{
		Id:        a.Id,
		BuyerId:   a.BuyerId,
		EventType: a.EventType,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *BuyerMapper) ActivityToModel(a *entity.BuyerActivity) *model.BuyerActivity {
	if a == nil {
		return nil
	}

	var detail datatypes.JSON
	if a.Detail != nil {
		raw, _ := json.Marshal(a.Detail)
		detail = datatypes.JSON(raw)
	}

	return &model.BuyerActivity{
		Id:        a.Id,
		BuyerId:   a.BuyerId,
		EventType: a.EventType,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *BuyerMapper) ActivitiesToEntities(activities []*model.BuyerActivity) []*entity.BuyerActivity {
	entities := make([]*entity.BuyerActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ActivityToEntity(a)
	}
	return entities
}
