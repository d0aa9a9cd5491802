package usecase

import (
	"context"
	"time"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// publishListingChanged отправляет событие после успешной записи в БД.
// Ошибка публикации только логируется: запрос клиента уже выполнен.
func publishListingChanged(ctx context.Context, publisher port.EventPublisherPort, logger port.LoggerPort, event domain.ListingChangedEvent) {
	if publisher == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()
	if err := publisher.PublishListingChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish listing event", port.Fields{"event_type": event.Type, "error": err.Error()})
	}
}

func publishMessageCreated(ctx context.Context, publisher port.EventPublisherPort, logger port.LoggerPort, msg *domain.Message) {
	if publisher == nil {
		return
	}
	event := domain.MessageCreatedEvent{
		MessageID:  msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		ListingID:  msg.ListingID,
		OccurredAt: msg.CreatedAt,
	}
	if err := publisher.PublishMessageCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish message event", port.Fields{"message_id": msg.ID, "error": err.Error()})
	}
}
