package mapper

import (
	"encoding/json"
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmailListMapper struct{}

func NewEmailListMapper() *EmailListMapper {
	return &EmailListMapper{}
}

func (m *EmailListMapper) ToEntity(l *model.EmailList) *entity.EmailList {
	if l == nil {
		return nil
	}

	var deletedAt *time.Time
	if l.DeletedAt.Valid {
		t := l.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	var criteria *entity.ListCriteria
	if len(l.Criteria) > 0 {
		criteria = &entity.ListCriteria{}
		_ = json.Unmarshal(l.Criteria, criteria)
	}

	return &entity.EmailList{
		Id:          l.Id,
		Name:        l.Name,
		Description: l.Description,
		Criteria:    criteria,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   l.DeletedAt.Valid,
	}
}

func (m *EmailListMapper) ToModel(l *entity.EmailList) *model.EmailList {
	if l == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if l.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *l.DeletedAt, Valid: true}
	} else if l.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	var criteria datatypes.JSON
	if l.Criteria != nil {
		raw, _ := json.Marshal(l.Criteria)
		criteria = datatypes.JSON(raw)
	}

	return &model.EmailList{
		Id:          l.Id,
		Name:        l.Name,
		Description: l.Description,
		Criteria:    criteria,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *EmailListMapper) ToEntities(lists []*model.EmailList) []*entity.EmailList {
	entities := make([]*entity.EmailList, len(lists))
	for i, l := range lists {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

func (m *EmailListMapper) MemberToEntity(mm *model.EmailListMember) *entity.EmailListMember {
	if mm == nil {
		return nil
	}
	return &entity.EmailListMember{
		Id:        mm.Id,
		ListId:    mm.ListId,
		BuyerId:   mm.BuyerId,
		CreatedAt: mm.CreatedAt,
	}
}

func (m *EmailListMapper) MemberToModel(mm *entity.EmailListMember) *model.EmailListMember {
	if mm == nil {
		return nil
	}
	return &model.EmailListMember{
		Id:        mm.Id,
		ListId:    mm.ListId,
		BuyerId:   mm.BuyerId,
		CreatedAt: mm.CreatedAt,
	}
}

func (m *EmailListMapper) MembersToEntities(members []*model.EmailListMember) []*entity.EmailListMember {
	entities := make([]*entity.EmailListMember, len(members))
	for i, mm := range members {
		entities[i] = m.MemberToEntity(mm)
	}
	return entities
}

func (m *EmailListMapper) CampaignToEntity(c *model.Campaign) *entity.Campaign {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Campaign{
		Id:         c.Id,
		ListId:     c.ListId,
		Subject:    c.Subject,
		HtmlBody:   c.HtmlBody,
		Status:     entity.CampaignStatus(c.Status),
		SentCount:  c.SentCount,
		ErrorCount: c.ErrorCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *EmailListMapper) CampaignToModel(c *entity.Campaign) *model.Campaign {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Campaign{
		Id:         c.Id,
		ListId:     c.ListId,
		Subject:    c.Subject,
		HtmlBody:   c.HtmlBody,
		Status:     string(c.Status),
		SentCount:  c.SentCount,
		ErrorCount: c.ErrorCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *EmailListMapper) CampaignsToEntities(campaigns []*model.Campaign) []*entity.Campaign {
	entities := make([]*entity.Campaign, len(campaigns))
	for i, c := range campaigns {
		entities[i] = m.CampaignToEntity(c)
	}
	return entities
}
