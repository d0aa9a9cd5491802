package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/constants"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type recordedPublish struct {
	routingKey string
	msg        amqp.Publishing
	deadline   bool
}

type fakeProducer struct {
	published []recordedPublish
	err       error
}

func (f *fakeProducer) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	_, hasDeadline := ctx.Deadline()
	f.published = append(f.published, recordedPublish{routingKey: routingKey, msg: msg, deadline: hasDeadline})
	return f.err
}

func TestNewListingEventsPublisher_NilProducer(t *testing.T) {
	_, err := NewListingEventsPublisher(nil)
	assert.Error(t, err)
}

func TestPublishListingChanged(t *testing.T) {
	producer := &fakeProducer{}
	publisher, err := NewListingEventsPublisher(producer)
	require.NoError(t, err)

	price := 999.0
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-123")
	err = publisher.PublishListingChanged(ctx, domain.ListingChangedEvent{
		Type:       domain.ListingPriceChanged,
		ListingID:  7,
		Price:      &price,
		OccurredAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, producer.published, 1)

	got := producer.published[0]
	assert.Equal(t, domain.ListingPriceChanged, got.routingKey)
	assert.True(t, got.deadline)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, "ListingChangedEvent", got.msg.Headers[constants.HeaderEventType])
	assert.Equal(t, "trace-123", got.msg.Headers[constants.HeaderTraceID])

	var body ListingChangedEventDTO
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, int64(7), body.ListingID)
	require.NotNil(t, body.Price)
	assert.Equal(t, 999.0, *body.Price)
}

func TestPublishListingChanged_RejectsInvalidPayload(t *testing.T) {
	producer := &fakeProducer{}
	publisher, _ := NewListingEventsPublisher(producer)

	err := publisher.PublishListingChanged(context.Background(), domain.ListingChangedEvent{Type: "listing.unknown", ListingID: 1})
	assert.Error(t, err)
	assert.Empty(t, producer.published)
}

func TestPublishMessageCreated_PropagatesProducerError(t *testing.T) {
	producer := &fakeProducer{err: errors.New("channel closed")}
	publisher, _ := NewListingEventsPublisher(producer)

	err := publisher.PublishMessageCreated(context.Background(), domain.MessageCreatedEvent{
		MessageID: 1, SenderID: 2, ReceiverID: 3, ListingID: 4,
	})
	assert.ErrorContains(t, err, "channel closed")
	require.Len(t, producer.published, 1)
	assert.Equal(t, constants.RoutingKeyMessageCreated, producer.published[0].routingKey)
}

func TestDisabledEventPublisher(t *testing.T) {
	var publisher port.EventPublisherPort = DisabledEventPublisher{}
	assert.NoError(t, publisher.PublishListingChanged(context.Background(), domain.ListingChangedEvent{Type: domain.ListingDeleted, ListingID: 1}))
	assert.NoError(t, publisher.PublishMessageCreated(context.Background(), domain.MessageCreatedEvent{MessageID: 1}))
}

type capturingLogger struct {
	fields []port.Fields
}

func (c *capturingLogger) Info(msg string, fields port.Fields) { c.fields = append(c.fields, fields) }
func (c *capturingLogger) Warn(msg string, fields port.Fields) { c.fields = append(c.fields, fields) }
func (c *capturingLogger) Error(msg string, err error, fields port.Fields) {
	c.fields = append(c.fields, fields)
}
func (c *capturingLogger) Debug(msg string, fields port.Fields)          { c.fields = append(c.fields, fields) }
func (c *capturingLogger) WithFields(fields port.Fields) port.LoggerPort { return c }

func TestPkgLoggerBridge_PairsKeysAndValues(t *testing.T) {
	internal := &capturingLogger{}
	bridge := NewPkgLoggerBridge(internal)

	bridge.Debug("Declaring exchange", "name", "moonhem_events", "type", "topic", "dangling")
	require.Len(t, internal.fields, 1)
	assert.Equal(t, port.Fields{"name": "moonhem_events", "type": "topic"}, internal.fields[0])
}
