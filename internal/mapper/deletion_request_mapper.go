package mapper

import (
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/model"
)

type DeletionRequestMapper struct{}

func NewDeletionRequestMapper() *DeletionRequestMapper {
	return &DeletionRequestMapper{}
}

func (m *DeletionRequestMapper) ToEntity(r *model.PropertyDeletionRequest) *entity.DeletionRequest {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.DeletionRequest{
		Id:                  r.Id,
		PropertyId:          r.PropertyId,
		BatchId:             r.BatchId,
		Token:               r.Token,
		Reason:              r.Reason,
		RequestedBy:         r.RequestedBy,
		RequestedByIdentity: r.RequestedByIdentity,
		RequestedByName:     r.RequestedByName,
		Status:              entity.DeletionStatus(r.Status),
		ExpiresAt:           r.ExpiresAt,
		ApprovedAt:          r.ApprovedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *DeletionRequestMapper) ToModel(r *entity.DeletionRequest) *model.PropertyDeletionRequest {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.PropertyDeletionRequest{
		Id:                  r.Id,
		PropertyId:          r.PropertyId,
		BatchId:             r.BatchId,
		Token:               r.Token,
		Reason:              r.Reason,
		RequestedBy:         r.RequestedBy,
		RequestedByIdentity: r.RequestedByIdentity,
		RequestedByName:     r.RequestedByName,
		Status:              string(r.Status),
		ExpiresAt:           r.ExpiresAt,
		ApprovedAt:          r.ApprovedAt,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *DeletionRequestMapper) ToEntities(requests []*model.PropertyDeletionRequest) []*entity.DeletionRequest {
	entities := make([]*entity.DeletionRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
