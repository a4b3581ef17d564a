package mapper

import (
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"

	"gorm.io/gorm"
)

type PropertyMapper struct{}

func NewPropertyMapper() *PropertyMapper {
	return &PropertyMapper{}
}

func (m *PropertyMapper) ToEntity(p *model.Property) *entity.Property {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Property{
		Id:            p.Id,
		OwnerId:       p.OwnerId,
		Title:         p.Title,
		Description:   p.Description,
		StreetAddress: p.StreetAddress,
		City:          p.City,
		County:        p.County,
		State:         p.State,
		Zip:           p.Zip,
		Area:          p.Area,
		Apn:           p.Apn,
		AcreageSqft:   p.AcreageSqft,
		AskingPrice:   p.AskingPrice,
		MinPrice:      p.MinPrice,
		Financing:     p.Financing,
		Status:        entity.PropertyStatus(p.Status),
		Featured:      p.Featured,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     p.DeletedAt.Valid,
	}
}

func (m *PropertyMapper) ToModel(p *entity.Property) *model.Property {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Property{
		Id:            p.Id,
		OwnerId:       p.OwnerId,
		Title:         p.Title,
		Description:   p.Description,
		StreetAddress: p.StreetAddress,
		City:          p.City,
		County:        p.County,
		State:         p.State,
		Zip:           p.Zip,
		Area:          p.Area,
		Apn:           p.Apn,
		AcreageSqft:   p.AcreageSqft,
		AskingPrice:   p.AskingPrice,
		MinPrice:      p.MinPrice,
		Financing:     p.Financing,
		Status:        string(p.Status),
		Featured:      p.Featured,
		ViewCount:     p.ViewCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *PropertyMapper) ToEntities(properties []*model.Property) []*entity.Property {
	entities := make([]*entity.Property, len(properties))
	for i, p := range properties {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
