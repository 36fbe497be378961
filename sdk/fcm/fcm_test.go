package fcm

import (
	"context"
	"testing"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/queue"
	"github.com/tastetube/push-bootstrap/redisprovider/testredisprovider"
	"github.com/tastetube/push-bootstrap/sdk"
)

var ctx = context.Background()

var testBundle = domain.Bundle{
	APIKey:        "k1",
	AppId:         "a1",
	SenderId:      "s1",
	ProjectId:     "p1",
	StorageBucket: "b1",
	AuthDomain:    "d1",
}

func TestFcm_Load(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		fx := newFixture(t)
		ns, err := fx.Load(ctx, sdk.Required)
		require.NoError(t, err)
		assert.NotNil(t, ns)
	})
	t.Run("unknown dependency", func(t *testing.T) {
		fx := newFixture(t)
		ns, err := fx.Load(ctx, []sdk.Dependency{sdk.DependencyApp, "firebase-analytics"})
		require.ErrorIs(t, err, sdk.ErrDependencyLoad)
		require.ErrorIs(t, err, sdk.ErrUnknownDependency)
		assert.Nil(t, ns)
	})
	t.Run("messaging transport unavailable", func(t *testing.T) {
		fx := newFixture(t)
		fx.redis.Server().Close()
		ns, err := fx.Load(ctx, sdk.Required)
		require.ErrorIs(t, err, sdk.ErrDependencyLoad)
		assert.Contains(t, err.Error(), string(sdk.DependencyMessaging))
		assert.Nil(t, ns)
	})
	t.Run("partially loaded", func(t *testing.T) {
		fx := newFixture(t)
		ns, err := fx.Load(ctx, []sdk.Dependency{sdk.DependencyApp})
		require.NoError(t, err)
		_, err = ns.Initialize(ctx, testBundle)
		require.ErrorIs(t, err, sdk.ErrDependencyLoad)
	})
}

func TestNamespace_Initialize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := newFixture(t)
		ns, err := fx.Load(ctx, sdk.Required)
		require.NoError(t, err)
		client, err := ns.Initialize(ctx, testBundle)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
	t.Run("missing project", func(t *testing.T) {
		fx := newFixture(t)
		ns, err := fx.Load(ctx, sdk.Required)
		require.NoError(t, err)
		bundle := testBundle
		bundle.ProjectId = ""
		client, err := ns.Initialize(ctx, bundle)
		require.ErrorIs(t, err, sdk.ErrInvalidBundle)
		assert.Contains(t, err.Error(), "projectId")
		assert.Nil(t, client)
	})
}

func TestClient_OnBackgroundMessage(t *testing.T) {
	t.Run("deliver", func(t *testing.T) {
		fx := newFixture(t)
		client := fx.newClient(t)
		var msgs = make(chan domain.InboundMessage, 2)
		require.NoError(t, client.OnBackgroundMessage(sdk.HandlerFunc(func(msg domain.InboundMessage) {
			msgs <- msg
		})))

		require.NoError(t, fx.queue.Add(ctx, domain.InboundMessage{Data: map[string]string{"title": "New order", "body": "..."}}))
		select {
		case msg := <-msgs:
			assert.Equal(t, "s1", msg.From)
			assert.NotEmpty(t, msg.MessageId)
			assert.Equal(t, map[string]string{"title": "New order", "body": "..."}, msg.Data)
		case <-time.After(time.Second):
			t.Fatal("timeout")
		}

		require.NoError(t, fx.queue.Add(ctx, domain.InboundMessage{MessageId: "m2", From: "other"}))
		select {
		case msg := <-msgs:
			assert.Equal(t, domain.InboundMessage{MessageId: "m2", From: "other"}, msg)
		case <-time.After(time.Second):
			t.Fatal("timeout")
		}
	})
	t.Run("single handler", func(t *testing.T) {
		fx := newFixture(t)
		client := fx.newClient(t)
		h := sdk.HandlerFunc(func(msg domain.InboundMessage) {})
		require.NoError(t, client.OnBackgroundMessage(h))
		require.ErrorIs(t, client.OnBackgroundMessage(h), sdk.ErrHandlerRegistered)
	})
	t.Run("closed", func(t *testing.T) {
		fx := newFixture(t)
		c := fx.newClient(t).(*client)
		var handled int
		require.NoError(t, c.OnBackgroundMessage(sdk.HandlerFunc(func(msg domain.InboundMessage) {
			handled++
		})))
		require.NoError(t, c.Close())

		require.ErrorIs(t, c.deliver(domain.InboundMessage{MessageId: "late"}), sdk.ErrClientClosed)
		assert.Equal(t, 0, handled)

		other := fx.newClient(t)
		require.NoError(t, other.Close())
		require.ErrorIs(t, other.OnBackgroundMessage(sdk.HandlerFunc(func(msg domain.InboundMessage) {})), sdk.ErrClientClosed)
	})
	t.Run("nil handler", func(t *testing.T) {
		fx := newFixture(t)
		client := fx.newClient(t)
		require.ErrorIs(t, client.OnBackgroundMessage(nil), sdk.ErrNilHandler)
	})
}

type fixture struct {
	sdk.SDK
	redis *testredisprovider.TestRedisProvider
	queue queue.Queue
	a     *app.App
}

func newFixture(t *testing.T) *fixture {
	fx := &fixture{
		SDK:   New(),
		redis: testredisprovider.NewTestRedisProvider(),
		queue: queue.New(),
		a:     new(app.App),
	}
	fx.a.Register(&testConfig{}).
		Register(fx.redis).
		Register(fx.queue).
		Register(fx.SDK)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}

func (fx *fixture) newClient(t *testing.T) sdk.MessagingClient {
	ns, err := fx.Load(ctx, sdk.Required)
	require.NoError(t, err)
	client, err := ns.Initialize(ctx, testBundle)
	require.NoError(t, err)
	return client
}

type testConfig struct{}

func (c *testConfig) Init(a *app.App) (err error) {
	return
}

func (c *testConfig) Name() (name string) {
	return "config"
}

func (c *testConfig) GetQueue() queue.Config {
	return queue.Config{PollIntervalMs: 10}
}
