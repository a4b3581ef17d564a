package implementation

import (
	"context"
	"errors"

	"landivo-be/internal/entity"
	"landivo-be/internal/mapper"
	"landivo-be/internal/model"
	"landivo-be/internal/repository/contract"
	"landivo-be/internal/repository/specification"

	"gorm.io/gorm"
)

type QualificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QualificationMapper
}

func NewQualificationRepository(db *gorm.DB) contract.QualificationRepository {
	return &QualificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewQualificationMapper(),
	}
}

func (r *QualificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QualificationRepositoryImpl) Create(ctx context.Context, qualification *entity.Qualification) error {
	m := r.mapper.ToModel(qualification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*qualification = *r.mapper.ToEntity(m)
	return nil
}

func (r *QualificationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Qualification, error) {
	var m model.Qualification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QualificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Qualification, error) {
	var models []*model.Qualification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QualificationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Qualification{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
