package geolocator

import (
	"sync/atomic"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"

	"github.com/tastetube/push-bootstrap/plugin"
)

const CName = "geolocator"

var log = logger.NewNamed("native.plugin." + CName)

func New() Geolocator {
	return new(geolocator)
}

type Geolocator interface {
	Attached() bool
	plugin.Plugin
}

type geolocator struct {
	attached atomic.Bool
}

func (g *geolocator) Init(a *app.App) (err error) {
	return nil
}

func (g *geolocator) Name() (name string) {
	return CName
}

// Attach fails when the maps credential has not been provided yet
func (g *geolocator) Attach(r plugin.Registrar) error {
	if _, err := r.Location().Credential(); err != nil {
		return err
	}
	g.attached.Store(true)
	log.Debug("attached")
	return nil
}

func (g *geolocator) Attached() bool {
	return g.attached.Load()
}
