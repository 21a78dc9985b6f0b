package amqp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/ports/events"
)

type recordingChannel struct {
	exchange, key string
	msg           amqp.Publishing
	closed        bool
}

func (c *recordingChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return nil
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	t.Parallel()

	ch := &recordingChannel{}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &Publisher{ch: ch, exchange: DefaultExchange, now: func() time.Time { return at }}

	err := p.Publish(context.Background(), events.PetCreated, map[string]string{"id": "p1", "name": "Rex"})
	require.NoError(t, err)

	assert.Equal(t, DefaultExchange, ch.exchange)
	assert.Equal(t, events.PetCreated, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, at, ch.msg.Timestamp)

	var body map[string]string
	require.NoError(t, json.Unmarshal(ch.msg.Body, &body))
	assert.Equal(t, "Rex", body["name"])

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublish_Unencodable(t *testing.T) {
	t.Parallel()

	ch := &recordingChannel{}
	p := &Publisher{ch: ch, exchange: DefaultExchange, now: time.Now}
	assert.Error(t, p.Publish(context.Background(), events.PetCreated, make(chan int)))
	assert.Empty(t, ch.key)
}
