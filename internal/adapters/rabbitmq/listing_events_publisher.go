package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/constants"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contracts"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// AMQPPublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher.
type AMQPPublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

const publishTimeout = 10 * time.Second

// ListingEventsPublisher реализует EventPublisherPort поверх RabbitMQ.
// Тело каждого события проверяется по JSON-схеме перед отправкой.
type ListingEventsPublisher struct {
	producer AMQPPublisher
}

func NewListingEventsPublisher(producer AMQPPublisher) (*ListingEventsPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &ListingEventsPublisher{producer: producer}, nil
}

func (p *ListingEventsPublisher) PublishListingChanged(ctx context.Context, event domain.ListingChangedEvent) error {
	return p.publish(ctx, event.Type, "ListingChangedEvent", toListingChangedDTO(event))
}

func (p *ListingEventsPublisher) PublishMessageCreated(ctx context.Context, event domain.MessageCreatedEvent) error {
	return p.publish(ctx, constants.RoutingKeyMessageCreated, "MessageCreatedEvent", toMessageCreatedDTO(event))
}

func (p *ListingEventsPublisher) publish(ctx context.Context, routingKey, eventType string, dto interface{}) error {
	const eventVersion = "1.0.0"

	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ListingEventsPublisher",
		"routing_key": routingKey,
		"event_type":  eventType,
	})

	body, err := json.Marshal(dto)
	if err != nil {
		adapterLogger.Error("Failed to marshal event to JSON", err, nil)
		return fmt.Errorf("failed to marshal %s: %w", eventType, err)
	}

	if err := contracts.ValidateEvent(eventType, eventVersion, body); err != nil {
		adapterLogger.Error("Event does not match its schema", err, nil)
		return fmt.Errorf("invalid %s payload: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			constants.HeaderEventType:    eventType,
			constants.HeaderEventVersion: eventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return err
	}

	adapterLogger.Debug("Event published.", nil)
	return nil
}

// DisabledEventPublisher используется, когда RabbitMQ выключен в конфигурации.
type DisabledEventPublisher struct{}

func (DisabledEventPublisher) PublishListingChanged(ctx context.Context, event domain.ListingChangedEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, skipping.", port.Fields{"event_type": event.Type})
	return nil
}

func (DisabledEventPublisher) PublishMessageCreated(ctx context.Context, event domain.MessageCreatedEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, skipping.", port.Fields{"event_type": domain.MessageCreated})
	return nil
}
