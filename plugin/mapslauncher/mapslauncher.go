package mapslauncher

import (
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/anyproto/any-sync/app"

	"github.com/tastetube/push-bootstrap/plugin"
)

const CName = "maps_launcher"

var ErrNotAttached = errors.New("maps launcher is not attached")

const baseURL = "https://www.google.com/maps/search/"

func New() MapsLauncher {
	return new(mapsLauncher)
}

type MapsLauncher interface {
	// LaunchURL returns a maps url pointing at the given coordinates
	LaunchURL(lat, lng float64) (string, error)
	plugin.Plugin
}

type mapsLauncher struct {
	key string
	mu  sync.Mutex
}

func (m *mapsLauncher) Init(a *app.App) (err error) {
	return nil
}

func (m *mapsLauncher) Name() (name string) {
	return CName
}

func (m *mapsLauncher) Attach(r plugin.Registrar) error {
	key, err := r.Location().Credential()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.key = key
	m.mu.Unlock()
	return nil
}

func (m *mapsLauncher) LaunchURL(lat, lng float64) (string, error) {
	m.mu.Lock()
	key := m.key
	m.mu.Unlock()
	if key == "" {
		return "", ErrNotAttached
	}
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", fmt.Sprintf("%g,%g", lat, lng))
	q.Set("key", key)
	return baseURL + "?" + q.Encode(), nil
}
