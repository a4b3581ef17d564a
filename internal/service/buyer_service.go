package service

import (
	"context"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"
	"landivo-be/pkg/events"
	pktNats "landivo-be/pkg/nats"

	"github.com/google/uuid"
)

type IBuyerService interface {
	Create(ctx context.Context, req *dto.CreateBuyerRequest) (*dto.CreateBuyerResponse, error)
	Update(ctx context.Context, req *dto.UpdateBuyerRequest) (*dto.BuyerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.BuyerResponse, error)
	List(ctx context.Context) ([]*dto.BuyerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Unsubscribe(ctx context.Context, id uuid.UUID) error
	RecordActivity(ctx context.Context, buyerId uuid.UUID, eventType string, detail map[string]interface{}) error
	Activities(ctx context.Context, buyerId uuid.UUID, limit, offset int) ([]*dto.BuyerActivityResponse, error)
}

type buyerService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewBuyerService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IBuyerService {
	return &buyerService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *buyerService) Create(ctx context.Context, req *dto.CreateBuyerRequest) (*dto.CreateBuyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.BuyerRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewValidation("a buyer with this email already exists")
	}

	buyer := entity.Buyer{
		Id:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		BuyerType:      entity.BuyerType(req.BuyerType),
		Source:         req.Source,
		IsVIP:          req.IsVIP,
		PreferredAreas: req.PreferredAreas,
		CreatedAt:      time.Now(),
	}

	if err := uow.BuyerRepository().Create(ctx, &buyer); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeBuyerRegistered,
			Data: map[string]interface{}{
				"buyer_id":   buyer.Id,
				"buyer_type": string(buyer.BuyerType),
				"source":     buyer.Source,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("buyer", "failed to publish event", map[string]interface{}{
				"event": events.TypeBuyerRegistered,
				"error": err.Error(),
			})
		}
	}

	return &dto.CreateBuyerResponse{Id: buyer.Id}, nil
}

func (s *buyerService) Update(ctx context.Context, req *dto.UpdateBuyerRequest) (*dto.BuyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, apperror.NewNotFound("buyer not found")
	}

	buyer.FirstName = req.FirstName
	buyer.LastName = req.LastName
	buyer.Phone = req.Phone
	buyer.BuyerType = entity.BuyerType(req.BuyerType)
	buyer.IsVIP = req.IsVIP
	buyer.PreferredAreas = req.PreferredAreas

	if err := uow.BuyerRepository().Update(ctx, buyer); err != nil {
		return nil, err
	}
	return s.toResponse(buyer), nil
}

func (s *buyerService) Show(ctx context.Context, id uuid.UUID) (*dto.BuyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, apperror.NewNotFound("buyer not found")
	}
	return s.toResponse(buyer), nil
}

func (s *buyerService) List(ctx context.Context) ([]*dto.BuyerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	buyers, err := uow.BuyerRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BuyerResponse, len(buyers))
	for i, b := range buyers {
		res[i] = s.toResponse(b)
	}
	return res, nil
}

func (s *buyerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if buyer == nil {
		return apperror.NewNotFound("buyer not found")
	}
	return uow.BuyerRepository().Delete(ctx, id)
}

func (s *buyerService) Unsubscribe(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if buyer == nil {
		return apperror.NewNotFound("buyer not found")
	}

	if err := uow.BuyerRepository().SetUnsubscribed(ctx, id, true); err != nil {
		return err
	}
	return s.RecordActivity(ctx, id, "unsubscribed", nil)
}

func (s *buyerService) RecordActivity(ctx context.Context, buyerId uuid.UUID, eventType string, detail map[string]interface{}) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity := entity.BuyerActivity{
		Id:        uuid.New(),
		BuyerId:   buyerId,
		EventType: eventType,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	return uow.BuyerRepository().CreateActivity(ctx, &activity)
}

func (s *buyerService) Activities(ctx context.Context, buyerId uuid.UUID, limit, offset int) ([]*dto.BuyerActivityResponse, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	activities, err := uow.BuyerRepository().FindActivities(ctx, buyerId, limit, offset)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.BuyerActivityResponse, len(activities))
	for i, a := range activities {
		res[i] = &dto.BuyerActivityResponse{
			Id:        a.Id,
			EventType: a.EventType,
			Detail:    a.Detail,
			CreatedAt: a.CreatedAt,
		}
	}
	return res, nil
}

func (s *buyerService) toResponse(b *entity.Buyer) *dto.BuyerResponse {
	return &dto.BuyerResponse{
		Id:             b.Id,
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		Phone:          b.Phone,
		BuyerType:      string(b.BuyerType),
		Source:         b.Source,
		IsVIP:          b.IsVIP,
		Unsubscribed:   b.Unsubscribed,
		PreferredAreas: b.PreferredAreas,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
