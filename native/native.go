package native

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/lifecycle"
	"github.com/tastetube/push-bootstrap/location"
	"github.com/tastetube/push-bootstrap/plugin"
	"github.com/tastetube/push-bootstrap/repo/installrepo"
)

const CName = "native"

var log = logger.NewNamed(CName)

var ErrAlreadyLaunched = errors.New("native host already launched")

type configSource interface {
	GetNative() Config
}

type Config struct {
	MapsAPIKey string `yaml:"mapsApiKey"`
	AppId      string `yaml:"appId"`
}

func New() Native {
	return new(native)
}

// Native is the launch bootstrap of the native host process.
type Native interface {
	// DidFinishLaunching is invoked once by the host at process start.
	// The maps credential is provided first, then plugins are attached with the bootstrap as delegate,
	// then the base startup runs and its result is returned as is.
	DidFinishLaunching(lc *domain.LaunchContext, opts domain.LaunchOptions) (bool, error)
	plugin.Delegate
	app.Component
}

type native struct {
	location    location.Location
	plugins     plugin.Registry
	lifecycle   lifecycle.Lifecycle
	installRepo installrepo.InstallRepo
	conf        Config

	mu       sync.Mutex
	launched bool
	opts     domain.LaunchOptions
}

func (n *native) Init(a *app.App) (err error) {
	n.location = a.MustComponent(location.CName).(location.Location)
	n.plugins = a.MustComponent(plugin.CName).(plugin.Registry)
	n.lifecycle = a.MustComponent(lifecycle.CName).(lifecycle.Lifecycle)
	n.conf = a.MustComponent("config").(configSource).GetNative()
	if r, ok := a.Component(installrepo.CName).(installrepo.InstallRepo); ok {
		n.installRepo = r
	}
	return
}

func (n *native) Name() (name string) {
	return CName
}

func (n *native) DidFinishLaunching(lc *domain.LaunchContext, opts domain.LaunchOptions) (bool, error) {
	n.mu.Lock()
	if n.launched {
		n.mu.Unlock()
		return false, ErrAlreadyLaunched
	}
	n.launched = true
	n.opts = opts
	n.mu.Unlock()

	if err := n.location.ProvideCredential(n.conf.MapsAPIKey); err != nil {
		return false, fmt.Errorf("provide maps credential: %w", err)
	}
	if err := n.plugins.Register(n); err != nil {
		return false, fmt.Errorf("register plugins: %w", err)
	}
	ok := n.lifecycle.Startup(lc, opts)
	if ok {
		n.saveInstallation()
	}
	log.Info("launch finished", zap.Bool("ok", ok))
	return ok, nil
}

func (n *native) RegistrarForPlugin(name string) plugin.Registrar {
	return &registrar{plugin: name, native: n}
}

func (n *native) saveInstallation() {
	if n.installRepo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := n.installRepo.Add(ctx, domain.Installation{
		Host:  domain.HostNative,
		AppId: n.conf.AppId,
		State: "launched",
	})
	if err != nil {
		log.Warn("can't save installation", zap.Error(err))
	}
}

type registrar struct {
	plugin string
	native *native
}

func (r *registrar) Plugin() string {
	return r.plugin
}

func (r *registrar) Location() location.Location {
	return r.native.location
}

func (r *registrar) LaunchOptions() domain.LaunchOptions {
	r.native.mu.Lock()
	defer r.native.mu.Unlock()
	return r.native.opts
}
