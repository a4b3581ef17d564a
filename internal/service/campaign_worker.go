package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"landivo-be/internal/entity"
	"landivo-be/internal/pkg/apperror"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/pkg/mailer"
	"landivo-be/internal/repository/specification"
	"landivo-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// campaignWorker drains the campaign topic: renders and sends one email
// per message, and keeps the campaign's sent/error counters current.
type campaignWorker struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger

	mu       sync.Mutex
	progress map[uuid.UUID]*campaignProgress
}

type campaignProgress struct {
	sent   int
	errors int
}

func NewCampaignWorker(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &campaignWorker{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
		progress:     make(map[uuid.UUID]*campaignProgress),
	}
}

func (w *campaignWorker) Consume(ctx context.Context) error {
	messages, err := w.pubSub.Subscribe(ctx, w.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			w.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (w *campaignWorker) processMessage(ctx context.Context, msg *message.Message) {
	var job campaignJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		w.logger.Error("campaign", "failed to unmarshal job", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed payloads never become valid, do not retry
		return
	}

	uow := w.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: job.CampaignId})
	if err != nil {
		msg.Nack()
		return
	}
	if campaign == nil {
		msg.Ack() // campaign deleted under us
		return
	}

	if campaign.Status == entity.CampaignStatusQueued {
		if err := uow.CampaignRepository().UpdateProgress(ctx, campaign.Id, entity.CampaignStatusSending, campaign.SentCount, campaign.ErrorCount); err != nil {
			w.logger.Warn("campaign", "failed to mark campaign sending", map[string]interface{}{
				"campaign_id": campaign.Id,
				"error":       err.Error(),
			})
		}
	}

	body := renderCampaignBody(campaign.HtmlBody, job.FirstName)
	sendErr := w.emailService.SendCampaignEmail(job.Email, campaign.Subject, body)

	w.mu.Lock()
	p, ok := w.progress[campaign.Id]
	if !ok {
		p = &campaignProgress{sent: campaign.SentCount, errors: campaign.ErrorCount}
		w.progress[campaign.Id] = p
	}
	if sendErr != nil {
		p.errors++
	} else {
		p.sent++
	}
	sent, errors := p.sent, p.errors
	w.mu.Unlock()

	if sendErr != nil {
		if apperror.IsDelivery(sendErr) {
			w.logger.Error("campaign", "delivery failed", map[string]interface{}{
				"campaign_id": campaign.Id,
				"buyer_id":    job.BuyerId,
				"error":       sendErr.Error(),
			})
		}
		if err := uow.CampaignRepository().UpdateProgress(ctx, campaign.Id, entity.CampaignStatusSending, sent, errors); err == nil {
			msg.Nack() // transient SMTP failures are worth one more pass
			return
		}
		msg.Ack()
		return
	}

	if err := uow.CampaignRepository().UpdateProgress(ctx, campaign.Id, entity.CampaignStatusSending, sent, errors); err != nil {
		w.logger.Warn("campaign", "failed to update progress", map[string]interface{}{
			"campaign_id": campaign.Id,
			"error":       err.Error(),
		})
	}
	msg.Ack()
}

// renderCampaignBody substitutes the {firstName} placeholder the admin UI
// offers in the composer.
func renderCampaignBody(html, firstName string) string {
	return strings.ReplaceAll(html, "{firstName}", firstName)
}
