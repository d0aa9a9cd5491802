package rabbitmq_adapter

import (
	"time"

	"github.com/google/uuid"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

// ListingChangedEventDTO - тело события ListingChangedEvent/1.0.0.
type ListingChangedEventDTO struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  string    `json:"event_type"`
	ListingID  int64     `json:"listing_id"`
	Price      *float64  `json:"price"`
	StatusID   *int64    `json:"status_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageCreatedEventDTO - тело события MessageCreatedEvent/1.0.0.
type MessageCreatedEventDTO struct {
	EventID    uuid.UUID `json:"event_id"`
	MessageID  int64     `json:"message_id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	ListingID  int64     `json:"listing_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toListingChangedDTO(e domain.ListingChangedEvent) ListingChangedEventDTO {
	return ListingChangedEventDTO{
		EventID:    uuid.New(),
		EventType:  e.Type,
		ListingID:  e.ListingID,
		Price:      e.Price,
		StatusID:   e.StatusID,
		OccurredAt: occurredAt(e.OccurredAt),
	}
}

func toMessageCreatedDTO(e domain.MessageCreatedEvent) MessageCreatedEventDTO {
	return MessageCreatedEventDTO{
		EventID:    uuid.New(),
		MessageID:  e.MessageID,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		ListingID:  e.ListingID,
		OccurredAt: occurredAt(e.OccurredAt),
	}
}

func occurredAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
