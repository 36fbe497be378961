//go:generate mockgen -destination mock_plugin/mock_plugin.go github.com/tastetube/push-bootstrap/plugin Registry

package plugin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/location"
)

const CName = "native.plugins"

var log = logger.NewNamed(CName)

var ErrUnknownPlugin = errors.New("unknown plugin")

func New() Registry {
	return new(registry)
}

// Plugin is attached to the host during launch. Plugins are app components registered under their name.
type Plugin interface {
	Attach(r Registrar) error
	app.Component
}

// Delegate is the host that plugins call back into.
type Delegate interface {
	RegistrarForPlugin(name string) Registrar
}

// Registrar gives a single plugin access to the host capabilities.
type Registrar interface {
	Plugin() string
	Location() location.Location
	LaunchOptions() domain.LaunchOptions
}

type Registry interface {
	// Register attaches every enabled plugin in the configured order
	Register(d Delegate) error
	Registered() []string
	app.Component
}

type registry struct {
	plugins    []Plugin
	registered []string
	mu         sync.Mutex
}

func (r *registry) Init(a *app.App) (err error) {
	conf := a.MustComponent("config").(configSource).GetPlugins()
	for _, name := range conf.Enabled {
		p, ok := a.Component(name).(Plugin)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlugin, name)
		}
		r.plugins = append(r.plugins, p)
	}
	return
}

func (r *registry) Name() (name string) {
	return CName
}

func (r *registry) Register(d Delegate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plugins {
		if err := p.Attach(d.RegistrarForPlugin(p.Name())); err != nil {
			return fmt.Errorf("attach plugin %s: %w", p.Name(), err)
		}
		r.registered = append(r.registered, p.Name())
		log.Debug("plugin attached", zap.String("plugin", p.Name()))
	}
	log.Info("plugins registered", zap.Int("count", len(r.registered)))
	return nil
}

func (r *registry) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.registered...)
}
