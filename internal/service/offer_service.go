package service

import (
	"context"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/pkg/mailer"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"
	"landivo-be/pkg/events"
	pktNats "landivo-be/pkg/nats"

	"github.com/google/uuid"
)

type IOfferService interface {
	Submit(ctx context.Context, req *dto.CreateOfferRequest) (*dto.CreateOfferResponse, error)
	Counter(ctx context.Context, req *dto.CounterOfferRequest) (*dto.OfferResponse, error)
	Accept(ctx context.Context, id uuid.UUID) (*dto.OfferResponse, error)
	Reject(ctx context.Context, id uuid.UUID) (*dto.OfferResponse, error)
	ListByProperty(ctx context.Context, propertyId uuid.UUID) ([]*dto.OfferResponse, error)
}

type offerService struct {
	uowFactory      unitofwork.RepositoryFactory
	emailService    mailer.IEmailService
	settingsService ISettingsService
	eventPublisher  *pktNats.Publisher
	logger          logger.ILogger
}

func NewOfferService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	settingsService ISettingsService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IOfferService {
	return &offerService{
		uowFactory:      uowFactory,
		emailService:    emailService,
		settingsService: settingsService,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

func (s *offerService) Submit(ctx context.Context, req *dto.CreateOfferRequest) (*dto.CreateOfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: req.PropertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperror.NewValidation("property not found")
	}
	if property.Status != entity.PropertyStatusAvailable && property.Status != entity.PropertyStatusPending {
		return nil, apperror.NewInvalidState("property is not accepting offers")
	}

	buyer, err := uow.BuyerRepository().FindOne(ctx, specification.ByID{ID: req.BuyerId})
	if err != nil {
		return nil, err
	}
	if buyer == nil {
		return nil, apperror.NewValidation("buyer not found")
	}

	offer := entity.Offer{
		Id:           uuid.New(),
		PropertyId:   req.PropertyId,
		BuyerId:      req.BuyerId,
		OfferedPrice: req.OfferedPrice,
		Status:       entity.OfferStatusPending,
		Message:      req.Message,
		CreatedAt:    time.Now(),
	}

	if err := uow.OfferRepository().Create(ctx, &offer); err != nil {
		return nil, err
	}

	activity := entity.BuyerActivity{
		Id:        uuid.New(),
		BuyerId:   buyer.Id,
		EventType: "offer_submitted",
		Detail: map[string]interface{}{
			"property_id":   property.Id.String(),
			"offered_price": req.OfferedPrice,
		},
		CreatedAt: time.Now(),
	}
	if err := uow.BuyerRepository().CreateActivity(ctx, &activity); err != nil {
		s.logger.Warn("offer", "failed to record buyer activity", map[string]interface{}{
			"buyer_id": buyer.Id,
			"error":    err.Error(),
		})
	}

	s.dispatchOfferAlert(ctx, property, buyer, &offer)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeOfferCreated,
			Data: map[string]interface{}{
				"offer_id":         offer.Id,
				"property_id":      property.Id,
				"property_address": property.FullAddress(),
				"buyer_name":       buyer.FullName(),
				"offered_price":    offer.OfferedPrice,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("offer", "failed to publish event", map[string]interface{}{
				"event": events.TypeOfferCreated,
				"error": err.Error(),
			})
		}
	}

	return &dto.CreateOfferResponse{
		Id:     offer.Id,
		Status: string(offer.Status),
	}, nil
}

func (s *offerService) Counter(ctx context.Context, req *dto.CounterOfferRequest) (*dto.OfferResponse, error) {
	return s.transition(ctx, req.Id, entity.OfferStatusCountered, &req.CounterPrice)
}

func (s *offerService) Accept(ctx context.Context, id uuid.UUID) (*dto.OfferResponse, error) {
	return s.transition(ctx, id, entity.OfferStatusAccepted, nil)
}

func (s *offerService) Reject(ctx context.Context, id uuid.UUID) (*dto.OfferResponse, error) {
	return s.transition(ctx, id, entity.OfferStatusRejected, nil)
}

// transition moves an offer out of PENDING (or COUNTERED, for accept and
// reject). Terminal offers stay put.
func (s *offerService) transition(ctx context.Context, id uuid.UUID, to entity.OfferStatus, counterPrice *float64) (*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offer, err := uow.OfferRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperror.NewNotFound("offer not found")
	}

	switch offer.Status {
	case entity.OfferStatusPending:
		// any transition allowed
	case entity.OfferStatusCountered:
		if to == entity.OfferStatusCountered {
			return nil, apperror.NewInvalidState("offer has already been countered")
		}
	default:
		return nil, apperror.NewInvalidState("offer has already been resolved")
	}

	offer.Status = to
	if counterPrice != nil {
		offer.CounterPrice = counterPrice
	}

	if err := uow.OfferRepository().Update(ctx, offer); err != nil {
		return nil, err
	}
	return s.toResponse(offer), nil
}

func (s *offerService) ListByProperty(ctx context.Context, propertyId uuid.UUID) ([]*dto.OfferResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	offers, err := uow.OfferRepository().FindAll(ctx,
		specification.ByPropertyID{PropertyID: propertyId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.OfferResponse, len(offers))
	for i, o := range offers {
		res[i] = s.toResponse(o)
	}
	return res, nil
}

func (s *offerService) dispatchOfferAlert(ctx context.Context, property *entity.Property, buyer *entity.Buyer, offer *entity.Offer) {
	settings, err := s.settingsService.Current(ctx)
	if err != nil || settings == nil || !settings.OfferAlertsEnabled || settings.AdminEmail == "" {
		return
	}

	payload := mailer.OfferAlertEmail{
		PropertyAddress: property.FullAddress(),
		BuyerName:       buyer.FullName(),
		BuyerEmail:      buyer.Email,
		OfferedPrice:    offer.OfferedPrice,
	}
	adminEmail := settings.AdminEmail
	go func() {
		if err := s.emailService.SendOfferAlert(adminEmail, payload); err != nil {
			s.logger.Error("offer", "failed to send offer alert", map[string]interface{}{
				"offer_id": offer.Id,
				"error":    err.Error(),
			})
		}
	}()
}

func (s *offerService) toResponse(o *entity.Offer) *dto.OfferResponse {
	return &dto.OfferResponse{
		Id:           o.Id,
		PropertyId:   o.PropertyId,
		BuyerId:      o.BuyerId,
		OfferedPrice: o.OfferedPrice,
		CounterPrice: o.CounterPrice,
		Status:       string(o.Status),
		Message:      o.Message,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
