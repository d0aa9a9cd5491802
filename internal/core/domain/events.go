package domain

import "time"

// Типы событий об изменении объявлений.
const (
	ListingCreated       = "listing.created"
	ListingUpdated       = "listing.updated"
	ListingPriceChanged  = "listing.price_changed"
	ListingStatusChanged = "listing.status_changed"
	ListingDeleted       = "listing.deleted"
	MessageCreated       = "message.created"
)

// ListingChangedEvent публикуется после успешного изменения объявления.
type ListingChangedEvent struct {
	Type       string
	ListingID  int64
	Price      *float64
	StatusID   *int64
	OccurredAt time.Time
}

// MessageCreatedEvent нужен, чтобы получатель узнал о новом сообщении.
type MessageCreatedEvent struct {
	MessageID  int64
	SenderID   int64
	ReceiverID int64
	ListingID  int64
	OccurredAt time.Time
}
