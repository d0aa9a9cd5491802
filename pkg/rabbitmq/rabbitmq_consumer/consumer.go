package rabbitmq_consumer

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/UA-classroom/db-l2-mo-hemnet/pkg/rabbitmq/rabbitmq_common"
)

// MessageHandler обрабатывает одно сообщение. nil - Ack, ошибка - Nack без возврата в очередь.
type MessageHandler func(ctx context.Context, delivery amqp.Delivery) error

// ConsumerConfig конфигурация для потребителя
type ConsumerConfig struct {
	// Настройки очереди
	QueueName       string // Если пусто, имя будет сгенерировано сервером
	DurableQueue    bool
	ExclusiveQueue  bool
	AutoDeleteQueue bool
	QueueArgs       amqp.Table

	// Обменник, к которому привязывается очередь
	ExchangeName    string
	ExchangeType    string
	DeclareExchange bool
	DurableExchange bool
	RoutingKeys     []string // Пустой список - привязка с ключом ""

	// QoS и обработка
	PrefetchCount int // 0 - без ограничений
	Workers       int // Сколько сообщений обрабатывается параллельно. 0 - одно.
	ConsumerTag   string

	Logger rabbitmq_common.Logger
}

func (c ConsumerConfig) Validate() error {
	if c.QueueName == "" && !c.ExclusiveQueue {
		return fmt.Errorf("consumer: server-named queue must be exclusive")
	}
	if c.DeclareExchange && (c.ExchangeName == "" || c.ExchangeType == "") {
		return fmt.Errorf("consumer: exchange name and type are required to declare an exchange")
	}
	if len(c.RoutingKeys) > 0 && c.ExchangeName == "" {
		return fmt.Errorf("consumer: routing keys require an exchange to bind to")
	}
	if c.PrefetchCount < 0 || c.Workers < 0 {
		return fmt.Errorf("consumer: prefetch count and workers cannot be negative")
	}
	return nil
}

// Consumer читает одну очередь и раздает сообщения пулу обработчиков.
type Consumer struct {
	config    ConsumerConfig
	handler   MessageHandler
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	wg        sync.WaitGroup

	Logger rabbitmq_common.Logger
}

// NewConsumer открывает канал, настраивает QoS, очередь и привязки.
func NewConsumer(cfg ConsumerConfig, handler MessageHandler, connManager *rabbitmq_common.ConnectionManager) (*Consumer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if handler == nil {
		return nil, fmt.Errorf("consumer: message handler is required")
	}
	if connManager == nil {
		return nil, fmt.Errorf("consumer: connection manager cannot be nil")
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}

	conn, ch, err := connManager.GetChannel()
	if err != nil {
		return nil, fmt.Errorf("consumer: failed to get channel from manager: %w", err)
	}

	c := &Consumer{
		config:  cfg,
		handler: handler,
		conn:    conn,
		channel: ch,
		Logger:  logger,
	}
	if err := c.setup(); err != nil {
		_ = ch.Close()
		return nil, err
	}
	return c, nil
}

func (c *Consumer) setup() error {
	if c.config.PrefetchCount > 0 {
		c.Logger.Debug("Setting QoS", "prefetch_count", c.config.PrefetchCount)
		if err := c.channel.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("consumer: failed to set QoS: %w", err)
		}
	}

	if c.config.DeclareExchange {
		c.Logger.Debug("Declaring exchange", "name", c.config.ExchangeName, "type", c.config.ExchangeType)
		err := c.channel.ExchangeDeclare(
			c.config.ExchangeName,
			c.config.ExchangeType,
			c.config.DurableExchange,
			false, // auto-deleted
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("consumer: failed to declare exchange '%s': %w", c.config.ExchangeName, err)
		}
	}

	q, err := c.channel.QueueDeclare(
		c.config.QueueName,
		c.config.DurableQueue,
		c.config.AutoDeleteQueue,
		c.config.ExclusiveQueue,
		false, // no-wait
		c.config.QueueArgs,
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to declare queue '%s': %w", c.config.QueueName, err)
	}
	c.queueName = q.Name

	if c.config.ExchangeName == "" {
		return nil
	}
	keys := c.config.RoutingKeys
	if len(keys) == 0 {
		keys = []string{""}
	}
	for _, key := range keys {
		c.Logger.Debug("Binding queue to exchange", "queue_name", c.queueName, "exchange_name", c.config.ExchangeName, "routing_key", key)
		if err := c.channel.QueueBind(c.queueName, key, c.config.ExchangeName, false, nil); err != nil {
			return fmt.Errorf("consumer: failed to bind queue '%s' with key '%s': %w", c.queueName, key, err)
		}
	}
	return nil
}

// QueueName возвращает фактическое имя очереди, в том числе сгенерированное сервером.
func (c *Consumer) QueueName() string {
	return c.queueName
}

// StartConsuming блокируется до отмены ctx или закрытия соединения.
// Отмена ctx - штатное завершение и возвращает nil.
func (c *Consumer) StartConsuming(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queueName,
		c.config.ConsumerTag,
		false, // auto-ack
		false, // exclusive consumer
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to register a consumer on queue '%s': %w", c.queueName, err)
	}
	notifyClose := c.conn.NotifyClose(make(chan *amqp.Error, 1))

	c.Logger.Info("Waiting for messages on queue", "queue_name", c.queueName, "workers", c.config.Workers)

	for i := 0; i < c.config.Workers; i++ {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case d, ok := <-msgs:
					if !ok {
						return
					}
					c.process(ctx, d)
				}
			}
		}()
	}

	select {
	case <-ctx.Done():
		c.Logger.Info("Context cancelled. Shutting down consumer.", "queue_name", c.queueName)
		return nil
	case amqpErr, ok := <-notifyClose:
		if !ok || amqpErr == nil {
			return fmt.Errorf("consumer: connection closed")
		}
		c.Logger.Error(amqpErr, "Connection closed for consumer.", "queue_name", c.queueName)
		return amqpErr
	}
}

// process вызывает обработчик и подтверждает сообщение по его результату.
func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	if err := c.handler(ctx, d); err != nil {
		c.Logger.Error(err, "Handler error for message", "delivery_tag", d.DeliveryTag, "routing_key", d.RoutingKey)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.Logger.Error(nackErr, "Failed to nack message", "delivery_tag", d.DeliveryTag)
		}
		return
	}
	if err := d.Ack(false); err != nil {
		c.Logger.Error(err, "Failed to ack message", "delivery_tag", d.DeliveryTag)
	}
}

// Close дожидается обработчиков и закрывает канал. Соединение принадлежит ConnectionManager.
func (c *Consumer) Close() error {
	c.Logger.Debug("Waiting for message handlers to finish...")
	c.wg.Wait()

	var err error
	if c.channel != nil && !c.channel.IsClosed() {
		if err = c.channel.Close(); err != nil {
			c.Logger.Error(err, "Error closing channel")
		}
	}
	c.channel = nil
	c.Logger.Info("Consumer closed")
	return err
}
