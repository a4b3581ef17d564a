package service

import (
	"encoding/json"
	"testing"
	"time"

	"landivo-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNotification(t *testing.T) {
	svc := &NotificationService{}
	adminID := uuid.New()
	propertyID := uuid.New()

	t.Run("renders placeholders and links the entity", func(t *testing.T) {
		evt := events.BaseEvent{
			Type: events.TypeOfferCreated,
			Data: map[string]interface{}{
				// NATS payloads arrive JSON-decoded, so ids are strings.
				"property_id":      propertyID.String(),
				"property_address": "0 Ranch Rd, Marfa, TX 79843",
				"buyer_name":       "Dana Whitfield",
				"offered_price":    "21000",
			},
			OccurredAt: time.Now(),
		}

		n := svc.buildNotification(adminID, notificationTemplates[events.TypeOfferCreated], evt)

		assert.Equal(t, adminID, n.UserID)
		assert.Equal(t, events.TypeOfferCreated, n.TypeCode)
		assert.Equal(t, "New Offer", n.Title)
		assert.Equal(t, "Dana Whitfield offered $21000 on 0 Ranch Rd, Marfa, TX 79843", n.Message)
		assert.Equal(t, "property", n.EntityType)
		require.NotNil(t, n.EntityID)
		assert.Equal(t, propertyID, *n.EntityID)
		assert.False(t, n.IsRead)

		var meta map[string]interface{}
		require.NoError(t, json.Unmarshal(n.Metadata, &meta))
		assert.Equal(t, "/properties/"+propertyID.String(), meta["action_url"])
	})

	t.Run("tolerates a missing entity id", func(t *testing.T) {
		evt := events.BaseEvent{
			Type: events.TypeDeletionApproved,
			Data: map[string]interface{}{"count": "3"},
		}

		n := svc.buildNotification(adminID, notificationTemplates[events.TypeDeletionApproved], evt)

		assert.Nil(t, n.EntityID)
		var meta map[string]interface{}
		require.NoError(t, json.Unmarshal(n.Metadata, &meta))
		_, hasLink := meta["action_url"]
		assert.False(t, hasLink)
	})
}
