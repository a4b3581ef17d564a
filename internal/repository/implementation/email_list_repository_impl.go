package implementation

import (
	"context"
	"errors"

	"landivo-be/internal/entity"
	"landivo-be/internal/mapper"
	"landivo-be/internal/model"
	"landivo-be/internal/repository/contract"
	"landivo-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmailListRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmailListMapper
}

func NewEmailListRepository(db *gorm.DB) contract.EmailListRepository {
	return &EmailListRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmailListMapper(),
	}
}

func (r *EmailListRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmailListRepositoryImpl) Create(ctx context.Context, list *entity.EmailList) error {
	m := r.mapper.ToModel(list)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*list = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmailListRepositoryImpl) Update(ctx context.Context, list *entity.EmailList) error {
	m := r.mapper.ToModel(list)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*list = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmailListRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EmailList{}, id).Error
}

func (r *EmailListRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailList, error) {
	var m model.EmailList
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmailListRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailList, error) {
	var models []*model.EmailList
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EmailListRepositoryImpl) AddMembers(ctx context.Context, listId uuid.UUID, buyerIds []uuid.UUID) (int64, error) {
	if len(buyerIds) == 0 {
		return 0, nil
	}

	members := make([]*model.EmailListMember, len(buyerIds))
	for i, buyerId := range buyerIds {
		members[i] = &model.EmailListMember{
			Id:      uuid.New(),
			ListId:  listId,
			BuyerId: buyerId,
		}
	}

	// ON CONFLICT DO NOTHING against the (list_id, buyer_id) unique index
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&members)

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *EmailListRepositoryImpl) RemoveMember(ctx context.Context, listId uuid.UUID, buyerId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("list_id = ? AND buyer_id = ?", listId, buyerId).
		Delete(&model.EmailListMember{}).Error
}

func (r *EmailListRepositoryImpl) CountMembers(ctx context.Context, listId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.EmailListMember{}).
		Where("list_id = ?", listId).
		Count(&count).Error
	return count, err
}

func (r *EmailListRepositoryImpl) FindMemberBuyerIds(ctx context.Context, listId uuid.UUID) ([]uuid.UUID, error) {
	var buyerIds []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.EmailListMember{}).
		Where("list_id = ?", listId).
		Pluck("buyer_id", &buyerIds).Error
	return buyerIds, err
}

type CampaignRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmailListMapper
}

func NewCampaignRepository(db *gorm.DB) contract.CampaignRepository {
	return &CampaignRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmailListMapper(),
	}
}

func (r *CampaignRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CampaignRepositoryImpl) Create(ctx context.Context, campaign *entity.Campaign) error {
	m := r.mapper.CampaignToModel(campaign)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.CampaignToEntity(m)
	return nil
}

func (r *CampaignRepositoryImpl) Update(ctx context.Context, campaign *entity.Campaign) error {
	m := r.mapper.CampaignToModel(campaign)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.CampaignToEntity(m)
	return nil
}

func (r *CampaignRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error) {
	var m model.Campaign
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CampaignToEntity(&m), nil
}

func (r *CampaignRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error) {
	var models []*model.Campaign
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CampaignsToEntities(models), nil
}

func (r *CampaignRepositoryImpl) UpdateProgress(ctx context.Context, id uuid.UUID, status entity.CampaignStatus, sentCount, errorCount int) error {
	return r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      string(status),
			"sent_count":  sentCount,
			"error_count": errorCount,
		}).Error
}
