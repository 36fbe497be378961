package fcm

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	firebase "firebase.google.com/go/v4"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/queue"
	"github.com/tastetube/push-bootstrap/redisprovider"
	"github.com/tastetube/push-bootstrap/sdk"
)

var log = logger.NewNamed(sdk.CName + ".fcm")

func New() sdk.SDK {
	return new(fcm)
}

type fcm struct {
	queue        queue.Queue
	redis        redis.UniversalClient
	runCtx       context.Context
	runCtxCancel context.CancelFunc
}

func (f *fcm) Init(a *app.App) (err error) {
	f.queue = a.MustComponent(queue.CName).(queue.Queue)
	f.redis = a.MustComponent(redisprovider.CName).(redisprovider.RedisProvider).Redis()
	f.runCtx, f.runCtxCancel = context.WithCancel(context.Background())
	return
}

func (f *fcm) Name() (name string) {
	return sdk.CName
}

func (f *fcm) Run(ctx context.Context) (err error) {
	return nil
}

func (f *fcm) Load(ctx context.Context, deps []sdk.Dependency) (sdk.Namespace, error) {
	ns := &namespace{fcm: f}
	for _, dep := range deps {
		switch dep {
		case sdk.DependencyApp:
			// linked in
		case sdk.DependencyMessaging:
			if err := f.redis.Ping(ctx).Err(); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", sdk.ErrDependencyLoad, dep, err)
			}
		default:
			return nil, fmt.Errorf("%w: %w: %s", sdk.ErrDependencyLoad, sdk.ErrUnknownDependency, dep)
		}
		ns.loaded = append(ns.loaded, dep)
		log.Debug("dependency loaded", zap.String("dep", string(dep)))
	}
	return ns, nil
}

func (f *fcm) Close(ctx context.Context) (err error) {
	if f.runCtxCancel != nil {
		f.runCtxCancel()
	}
	return nil
}

type namespace struct {
	fcm    *fcm
	loaded []sdk.Dependency
}

func (ns *namespace) Initialize(ctx context.Context, bundle domain.Bundle) (sdk.MessagingClient, error) {
	for _, dep := range sdk.Required {
		if !slices.Contains(ns.loaded, dep) {
			return nil, fmt.Errorf("%w: %s is not loaded", sdk.ErrDependencyLoad, dep)
		}
	}
	if missing := bundle.Missing(); len(missing) != 0 {
		return nil, fmt.Errorf("%w: missing %s", sdk.ErrInvalidBundle, strings.Join(missing, ", "))
	}
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     bundle.ProjectId,
		StorageBucket: bundle.StorageBucket,
	}, option.WithAPIKey(bundle.APIKey))
	if err != nil {
		return nil, err
	}
	// the firebase sdk validates the project id and client options here, without a network call
	if _, err = fbApp.Messaging(ctx); err != nil {
		return nil, err
	}
	log.Info("messaging initialized", zap.String("projectId", bundle.ProjectId), zap.String("appId", bundle.AppId))
	return &client{fcm: ns.fcm, bundle: bundle}, nil
}

type client struct {
	fcm     *fcm
	bundle  domain.Bundle
	handler sdk.BackgroundHandler
	closed  bool
	mu      sync.RWMutex
}

func (c *client) OnBackgroundMessage(h sdk.BackgroundHandler) error {
	if h == nil {
		return sdk.ErrNilHandler
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return sdk.ErrClientClosed
	}
	if c.handler != nil {
		return sdk.ErrHandlerRegistered
	}
	c.handler = h
	if err := c.fcm.queue.Consume(c.fcm.runCtx, c.deliver); err != nil {
		c.handler = nil
		return err
	}
	return nil
}

// deliver returns an error once the client is closed, so the queue rejects the delivery instead of acking it
func (c *client) deliver(msg domain.InboundMessage) error {
	if msg.From == "" {
		msg.From = c.bundle.SenderId
	}
	if msg.MessageId == "" {
		msg.MessageId = domain.NewId()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return sdk.ErrClientClosed
	}
	c.handler.HandleBackgroundMessage(msg)
	return nil
}

// Close waits for in-flight deliveries to finish
func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
