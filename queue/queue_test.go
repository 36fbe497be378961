package queue

import (
	"context"
	"testing"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/redisprovider/testredisprovider"
)

var ctx = context.Background()

func TestQueue_Consume(t *testing.T) {
	fx := newFixture(t)
	var toSend = []domain.InboundMessage{
		{MessageId: "1", Data: map[string]string{"title": "New order", "body": "..."}},
		{MessageId: "2", Notification: &domain.Notification{Title: "t", Body: "b"}},
	}
	require.NoError(t, fx.Add(ctx, toSend[0]))
	var msgs = make(chan domain.InboundMessage)
	require.NoError(t, fx.Consume(ctx, func(msg domain.InboundMessage) error {
		msgs <- msg
		return nil
	}))

	require.NoError(t, fx.Add(ctx, toSend[1]))
	var result = make([]domain.InboundMessage, 2)
	for i := range result {
		select {
		case msg := <-msgs:
			result[i] = msg
		case <-time.After(time.Second):
			t.Fatal("timeout")
		}
	}
	assert.Equal(t, toSend, result)
}

func TestQueue_ConsumeEmpty(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.Add(ctx, domain.InboundMessage{}))
	var msgs = make(chan domain.InboundMessage, 1)
	require.NoError(t, fx.Consume(ctx, func(msg domain.InboundMessage) error {
		msgs <- msg
		return nil
	}))
	select {
	case msg := <-msgs:
		assert.True(t, msg.IsEmpty())
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

type fixture struct {
	Queue
	a *app.App
}

func newFixture(t *testing.T) *fixture {
	fx := &fixture{
		Queue: New(),
		a:     new(app.App),
	}
	fx.a.Register(&testConfig{}).Register(testredisprovider.NewTestRedisProvider()).Register(fx.Queue)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}

type testConfig struct{}

func (c *testConfig) Init(a *app.App) (err error) {
	return
}

func (c *testConfig) Name() (name string) {
	return "config"
}

func (c *testConfig) GetQueue() Config {
	return Config{PollIntervalMs: 10}
}
