package websocket

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
)

// AnnouncementsUpdated is the message type published after every change to
// the shared announcement list.
const AnnouncementsUpdated = "announcements.updated"

// AnnouncementSource is implemented by the shared state store.
type AnnouncementSource interface {
	SubscribeAnnouncements(buffer int) (<-chan []models.Announcement, func())
}

// AnnouncementRelay forwards store changes to the hub.
type AnnouncementRelay struct {
	source AnnouncementSource
	hub    *Hub
	logger zerolog.Logger
}

// NewAnnouncementRelay creates a relay between source and hub.
func NewAnnouncementRelay(source AnnouncementSource, hub *Hub, logger zerolog.Logger) *AnnouncementRelay {
	return &AnnouncementRelay{source: source, hub: hub, logger: logger}
}

// Start subscribes to the store and relays until ctx is done.
func (r *AnnouncementRelay) Start(ctx context.Context) {
	updates, cancel := r.source.SubscribeAnnouncements(8)
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case list, ok := <-updates:
				if !ok {
					return
				}
				r.logger.Debug().Int("count", len(list)).Msg("Relaying announcement update")
				r.hub.Publish(&Message{
					Type:    AnnouncementsUpdated,
					Topic:   TopicAnnouncements,
					Payload: list,
				})
			}
		}
	}()
}
