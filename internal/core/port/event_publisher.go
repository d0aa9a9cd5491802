package port

import (
	"context"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

// EventPublisherPort - исходящий порт для доменных событий.
type EventPublisherPort interface {
	PublishListingChanged(ctx context.Context, event domain.ListingChangedEvent) error
	PublishMessageCreated(ctx context.Context, event domain.MessageCreatedEvent) error
}
