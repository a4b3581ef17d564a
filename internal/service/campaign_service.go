package service

import (
	"context"
	"encoding/json"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// campaignJob is one recipient's send, queued on the campaign topic.
type campaignJob struct {
	CampaignId uuid.UUID `json:"campaign_id"`
	BuyerId    uuid.UUID `json:"buyer_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
}

type ICampaignService interface {
	Create(ctx context.Context, req *dto.CreateCampaignRequest) (*dto.CreateCampaignResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error)
	List(ctx context.Context) ([]*dto.CampaignResponse, error)
}

type campaignService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailListService IEmailListService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCampaignService(
	uowFactory unitofwork.RepositoryFactory,
	emailListService IEmailListService,
	publisherService IPublisherService,
	log logger.ILogger,
) ICampaignService {
	return &campaignService{
		uowFactory:       uowFactory,
		emailListService: emailListService,
		publisherService: publisherService,
		logger:           log,
	}
}

// Create resolves recipients immediately, persists the campaign as QUEUED
// and fans one job per recipient onto the queue. The worker moves it to
// SENDING and then DONE.
func (s *campaignService) Create(ctx context.Context, req *dto.CreateCampaignRequest) (*dto.CreateCampaignResponse, error) {
	recipients, err := s.emailListService.ResolveRecipients(ctx, req.ListId)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperror.NewValidation("the list resolves to zero recipients")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign := entity.Campaign{
		Id:        uuid.New(),
		ListId:    req.ListId,
		Subject:   req.Subject,
		HtmlBody:  req.HtmlBody,
		Status:    entity.CampaignStatusQueued,
		CreatedAt: time.Now(),
	}
	if err := uow.CampaignRepository().Create(ctx, &campaign); err != nil {
		return nil, err
	}

	for _, buyer := range recipients {
		job := campaignJob{
			CampaignId: campaign.Id,
			BuyerId:    buyer.Id,
			Email:      buyer.Email,
			FirstName:  buyer.FirstName,
		}
		payload, err := json.Marshal(job)
		if err != nil {
			return nil, err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Error("campaign", "failed to enqueue job", map[string]interface{}{
				"campaign_id": campaign.Id,
				"buyer_id":    buyer.Id,
				"error":       err.Error(),
			})
		}
	}

	return &dto.CreateCampaignResponse{
		Id:     campaign.Id,
		Status: string(campaign.Status),
	}, nil
}

func (s *campaignService) Show(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewNotFound("campaign not found")
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignService) List(ctx context.Context) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaigns, err := uow.CampaignRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		res[i] = toCampaignResponse(c)
	}
	return res, nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		Id:         c.Id,
		ListId:     c.ListId,
		Subject:    c.Subject,
		Status:     string(c.Status),
		SentCount:  c.SentCount,
		ErrorCount: c.ErrorCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
