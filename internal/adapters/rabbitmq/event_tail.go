package rabbitmq_adapter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/constants"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contracts"
	"github.com/UA-classroom/db-l2-mo-hemnet/pkg/rabbitmq/rabbitmq_common"
	"github.com/UA-classroom/db-l2-mo-hemnet/pkg/rabbitmq/rabbitmq_consumer"
)

// EventTail подписывается на обменник событий временной очередью и печатает события.
type EventTail struct {
	url      string
	exchange string
	logger   rabbitmq_common.Logger
}

func NewEventTail(url, exchange string, logger rabbitmq_common.Logger) (*EventTail, error) {
	if url == "" {
		return nil, fmt.Errorf("rabbitmq URL is required to follow events")
	}
	if exchange == "" {
		exchange = constants.EventsExchange
	}
	return &EventTail{url: url, exchange: exchange, logger: logger}, nil
}

// Stream печатает события в w, пока ctx не отменен. Пустой routingKeys - все события.
func (t *EventTail) Stream(ctx context.Context, routingKeys []string, w io.Writer) error {
	if len(routingKeys) == 0 {
		routingKeys = []string{"#"}
	}

	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: t.url}, t.logger)
	if err != nil {
		return err
	}
	defer connManager.Close()

	consumer, err := rabbitmq_consumer.NewConsumer(rabbitmq_consumer.ConsumerConfig{
		ExclusiveQueue:  true,
		AutoDeleteQueue: true,
		ExchangeName:    t.exchange,
		ExchangeType:    constants.EventsExchangeType,
		DeclareExchange: true,
		DurableExchange: true,
		RoutingKeys:     routingKeys,
		PrefetchCount:   50,
		ConsumerTag:     "moonhem-admin-events",
		Logger:          t.logger,
	}, NewEventPrinter(w), connManager)
	if err != nil {
		return err
	}
	defer consumer.Close()

	return consumer.StartConsuming(ctx)
}

// NewEventPrinter возвращает обработчик, который проверяет тело по схеме из заголовков
// и пишет одну строку на событие. Сообщение без схемы отклоняется.
func NewEventPrinter(w io.Writer) rabbitmq_consumer.MessageHandler {
	var mu sync.Mutex
	return func(ctx context.Context, d amqp.Delivery) error {
		eventType, _ := d.Headers[constants.HeaderEventType].(string)
		eventVersion, _ := d.Headers[constants.HeaderEventVersion].(string)
		if eventType == "" || eventVersion == "" {
			return fmt.Errorf("message %d has no event type or version headers", d.DeliveryTag)
		}
		if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
			return fmt.Errorf("invalid %s payload: %w", eventType, err)
		}

		ts := d.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}
		traceID, _ := d.Headers[constants.HeaderTraceID].(string)
		if traceID == "" {
			traceID = "-"
		}

		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintf(w, "%s %-24s trace=%s %s\n", ts.UTC().Format(time.RFC3339), d.RoutingKey, traceID, d.Body)
		return err
	}
}
