package testredisprovider

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"

	"github.com/tastetube/push-bootstrap/redisprovider"
)

// NewTestRedisProvider returns a provider backed by an in-process miniredis server
func NewTestRedisProvider() *TestRedisProvider {
	return &TestRedisProvider{}
}

var _ redisprovider.RedisProvider = (*TestRedisProvider)(nil)

type TestRedisProvider struct {
	server *miniredis.Miniredis
	client redis.UniversalClient
}

func (t *TestRedisProvider) Init(a *app.App) (err error) {
	if t.server, err = miniredis.Run(); err != nil {
		return
	}
	t.client = redis.NewClient(&redis.Options{Addr: t.server.Addr()})
	return
}

func (t *TestRedisProvider) Name() (name string) {
	return redisprovider.CName
}

func (t *TestRedisProvider) Run(ctx context.Context) (err error) {
	return t.client.Ping(ctx).Err()
}

func (t *TestRedisProvider) Redis() redis.UniversalClient {
	return t.client
}

// Server exposes the underlying miniredis server so tests can simulate outages
func (t *TestRedisProvider) Server() *miniredis.Miniredis {
	return t.server
}

func (t *TestRedisProvider) Close(ctx context.Context) (err error) {
	_ = t.client.Close()
	t.server.Close()
	return
}
