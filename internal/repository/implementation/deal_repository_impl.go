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
)

type DealRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DealMapper
}

func NewDealRepository(db *gorm.DB) contract.DealRepository {
	return &DealRepositoryImpl{
		db:     db,
		mapper: mapper.NewDealMapper(),
	}
}

func (r *DealRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DealRepositoryImpl) Create(ctx context.Context, deal *entity.Deal) error {
	m := r.mapper.ToModel(deal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*deal = *r.mapper.ToEntity(m)
	return nil
}

func (r *DealRepositoryImpl) Update(ctx context.Context, deal *entity.Deal) error {
	m := r.mapper.ToModel(deal)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*deal = *r.mapper.ToEntity(m)
	return nil
}

func (r *DealRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deal, error) {
	var m model.Deal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DealRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deal, error) {
	var models []*model.Deal
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DealRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Deal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DealRepositoryImpl) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.PaymentToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.PaymentToEntity(m)
	return nil
}

func (r *DealRepositoryImpl) FindPaymentByOrderId(ctx context.Context, orderId string) (*entity.Payment, error) {
	var m model.Payment
	err := r.db.WithContext(ctx).Where("order_id = ?", orderId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentToEntity(&m), nil
}

func (r *DealRepositoryImpl) FindPaymentsByDealId(ctx context.Context, dealId uuid.UUID) ([]*entity.Payment, error) {
	var models []*model.Payment
	err := r.db.WithContext(ctx).
		Where("deal_id = ?", dealId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.PaymentsToEntities(models), nil
}

func (r *DealRepositoryImpl) UpdatePaymentStatus(ctx context.Context, orderId string, status entity.PaymentStatus, paymentMethod string) error {
	updates := map[string]interface{}{
		"status": string(status),
	}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	if status == entity.PaymentStatusSuccess {
		updates["paid_at"] = gorm.Expr("CURRENT_TIMESTAMP")
	}

	return r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("order_id = ?", orderId).
		Updates(updates).Error
}
