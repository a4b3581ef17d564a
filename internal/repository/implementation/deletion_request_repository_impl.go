package implementation

import (
	"context"
	"errors"
	"time"

	"landivo-be/internal/entity"
	"landivo-be/internal/mapper"
	"landivo-be/internal/model"
	"landivo-be/internal/repository/contract"
	"landivo-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeletionRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DeletionRequestMapper
}

func NewDeletionRequestRepository(db *gorm.DB) contract.DeletionRequestRepository {
	return &DeletionRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewDeletionRequestMapper(),
	}
}

func (r *DeletionRequestRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DeletionRequestRepositoryImpl) Create(ctx context.Context, request *entity.DeletionRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *DeletionRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DeletionRequest, error) {
	var m model.PropertyDeletionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DeletionRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeletionRequest, error) {
	var models []*model.PropertyDeletionRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DeletionRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PropertyDeletionRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TransitionStatus is the single write path that resolves a token. The
// WHERE clause carries both token and expected status, so two concurrent
// approvals race on the same row and exactly one sees RowsAffected == 1.
func (r *DeletionRequestRepositoryImpl) TransitionStatus(ctx context.Context, token string, from, to entity.DeletionStatus, resolvedAt *time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status": string(to),
	}
	if resolvedAt != nil {
		updates["approved_at"] = *resolvedAt
	}

	result := r.db.WithContext(ctx).
		Model(&model.PropertyDeletionRequest{}).
		Where("token = ? AND status = ?", token, string(from)).
		Updates(updates)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DeletionRequestRepositoryImpl) DeletePendingByPropertyId(ctx context.Context, propertyId uuid.UUID, keepId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ? AND id <> ?", propertyId, string(entity.DeletionStatusPending), keepId).
		Delete(&model.PropertyDeletionRequest{})

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
