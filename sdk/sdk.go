//go:generate mockgen -destination mock_sdk/mock_sdk.go github.com/tastetube/push-bootstrap/sdk SDK,Namespace,MessagingClient

// Package sdk describes the messaging SDK consumed by the background worker.
//
// A Namespace is only reachable through SDK.Load, so nothing exported by the
// SDK can be referenced before its dependencies have been loaded.
package sdk

import (
	"context"
	"errors"

	"github.com/anyproto/any-sync/app"

	"github.com/tastetube/push-bootstrap/domain"
)

const CName = "worker.sdk"

var (
	ErrDependencyLoad    = errors.New("sdk dependency load failed")
	ErrUnknownDependency = errors.New("unknown sdk dependency")
	ErrInvalidBundle     = errors.New("invalid configuration bundle")
	ErrHandlerRegistered = errors.New("background handler already registered")
	ErrNilHandler        = errors.New("background handler is nil")
	ErrClientClosed      = errors.New("messaging client is closed")
)

type Dependency string

const (
	DependencyApp       Dependency = "firebase-app"
	DependencyMessaging Dependency = "firebase-messaging"
)

// Required lists the dependencies the worker loads before touching the SDK
var Required = []Dependency{DependencyApp, DependencyMessaging}

type SDK interface {
	Load(ctx context.Context, deps []Dependency) (Namespace, error)
	app.Component
}

type Namespace interface {
	// Initialize activates the messaging channel for the given bundle
	Initialize(ctx context.Context, bundle domain.Bundle) (MessagingClient, error)
}

type MessagingClient interface {
	// OnBackgroundMessage registers the handler invoked for every message that arrives while no foreground context is active
	OnBackgroundMessage(h BackgroundHandler) error
	// Close stops handing messages to the handler. Messages arriving afterwards stay in the delivery channel.
	Close() error
}

type BackgroundHandler interface {
	HandleBackgroundMessage(msg domain.InboundMessage)
}

type HandlerFunc func(msg domain.InboundMessage)

func (f HandlerFunc) HandleBackgroundMessage(msg domain.InboundMessage) {
	f(msg)
}
