package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"landivo-be/internal/dto"
	"landivo-be/internal/model"
	"landivo-be/internal/pkg/logger"
	"landivo-be/internal/repository"
	"landivo-be/pkg/events"
	pktNats "landivo-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

// notificationTemplate maps a domain event to the inbox row it produces.
// Every event here targets the admin audience.
type notificationTemplate struct {
	Title      string
	Template   string
	EntityType string
	EntityPath string // route segment for the client-side action link
	EntityKey  string
}

var notificationTemplates = map[string]notificationTemplate{
	events.TypeOfferCreated: {
		Title:      "New Offer",
		Template:   "{buyer_name} offered ${offered_price} on {property_address}",
		EntityType: "property",
		EntityPath: "properties",
		EntityKey:  "property_id",
	},
	events.TypeDeletionRequested: {
		Title:      "Deletion Requested",
		Template:   "Deletion requested for {property_address} by {requested_by}",
		EntityType: "property",
		EntityPath: "properties",
		EntityKey:  "property_id",
	},
	events.TypeDeletionApproved: {
		Title:      "Deletion Approved",
		Template:   "Property deletion was approved and the listing has been removed",
		EntityType: "property",
		EntityPath: "properties",
		EntityKey:  "property_id",
	},
	events.TypeDeletionRejected: {
		Title:      "Deletion Rejected",
		Template:   "Property deletion was rejected; the listing stays up",
		EntityType: "property",
		EntityPath: "properties",
		EntityKey:  "property_id",
	},
	events.TypeBuyerRegistered: {
		Title:      "New Buyer",
		Template:   "A new {buyer_type} buyer joined via {source}",
		EntityType: "buyer",
		EntityPath: "buyers",
		EntityKey:  "buyer_id",
	},
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer so no
// messages are lost across restarts.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("landivo.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("notification", "failed to start subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("notification", "listening on landivo.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	tmpl, ok := notificationTemplates[event.EventType()]
	if !ok {
		// Not every event produces an inbox entry.
		return nil
	}

	admins, err := s.repo.GetUsersByRole(ctx, "admin")
	if err != nil {
		// Returning the error makes the bus redeliver.
		s.logger.Error("notification", "failed to resolve admins", map[string]interface{}{"error": err.Error()})
		return err
	}

	for _, admin := range admins {
		notif := s.buildNotification(admin.Id, tmpl, event)

		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("notification", "failed to persist notification", map[string]interface{}{
				"user_id": admin.Id,
				"error":   err.Error(),
			})
			continue
		}

		if s.delivery != nil {
			s.delivery.Send(admin.Id, notif)
		}
	}

	return nil
}

func (s *NotificationService) buildNotification(userID uuid.UUID, tmpl notificationTemplate, event events.Event) model.Notification {
	payload := event.Payload()

	msg := tmpl.Template
	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		msg = strings.ReplaceAll(msg, placeholder, fmt.Sprintf("%v", v))
	}

	var entityID *uuid.UUID
	if idStr, ok := payload[tmpl.EntityKey].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			entityID = &id
		}
	}

	metaMap := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		metaMap[k] = v
	}
	if entityID != nil {
		metaMap["action_url"] = fmt.Sprintf("/%s/%s", tmpl.EntityPath, entityID.String())
	}
	metaJSON, _ := json.Marshal(metaMap)

	return model.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		TypeCode:   event.EventType(),
		Title:      tmpl.Title,
		Message:    msg,
		Metadata:   datatypes.JSON(metaJSON),
		EntityType: tmpl.EntityType,
		EntityID:   entityID,
		CreatedAt:  time.Now(),
		IsRead:     false,
	}
}

// List fetches a page of notifications for a user along with totals.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.ListNotificationsResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, total, err := s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := &dto.ListNotificationsResponse{
		Notifications: make([]dto.NotificationResponse, len(rows)),
		Total:         total,
		UnreadCount:   unread,
	}
	for i, n := range rows {
		res.Notifications[i] = toNotificationResponse(n)
	}
	return res, nil
}

// MarkAsRead marks a single notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead clears the unread state for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	res := dto.NotificationResponse{
		Id:        n.ID,
		Type:      n.TypeCode,
		Title:     n.Title,
		Body:      n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Metadata) > 0 {
		var meta map[string]interface{}
		if err := json.Unmarshal(n.Metadata, &meta); err == nil {
			if link, ok := meta["action_url"].(string); ok {
				res.Link = link
			}
		}
	}
	return res
}
