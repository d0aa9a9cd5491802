package rabbitmq_producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisherConfigValidate(t *testing.T) {
	assert.NoError(t, PublisherConfig{ExchangeName: "moonhem_events", ExchangeType: "topic", DeclareExchangeIfMissing: true}.Validate())
	assert.NoError(t, PublisherConfig{ExchangeName: "moonhem_events"}.Validate())

	assert.ErrorContains(t, PublisherConfig{ExchangeType: "topic", DeclareExchangeIfMissing: true}.Validate(), "exchange name is required")
	assert.ErrorContains(t, PublisherConfig{ExchangeName: "moonhem_events", DeclareExchangeIfMissing: true}.Validate(), "exchange type is required")
	assert.ErrorContains(t, PublisherConfig{ExchangeName: "x", ExchangeType: "queue"}.Validate(), "unsupported exchange type")
}

func TestNewPublisher_RequiresConnectionManager(t *testing.T) {
	p, err := NewPublisher(PublisherConfig{ExchangeName: "moonhem_events", ExchangeType: "topic"}, nil)
	assert.ErrorContains(t, err, "connection manager cannot be nil")
	assert.Nil(t, p)
}
