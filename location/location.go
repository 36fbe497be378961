//go:generate mockgen -destination mock_location/mock_location.go github.com/tastetube/push-bootstrap/location Location

package location

import (
	"errors"
	"sync"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
)

const CName = "native.location"

var log = logger.NewNamed(CName)

var (
	ErrNoCredential         = errors.New("maps credential is not provided")
	ErrEmptyCredential      = errors.New("maps credential is empty")
	ErrCredentialAlreadySet = errors.New("maps credential is already set")
)

func New() Location {
	return new(location)
}

// Location is the process-wide maps capability. The credential must be provided before first use.
type Location interface {
	ProvideCredential(key string) error
	Credential() (string, error)
	Provided() bool
	app.Component
}

type location struct {
	mu  sync.Mutex
	key string
}

func (l *location) Init(a *app.App) (err error) {
	return nil
}

func (l *location) Name() (name string) {
	return CName
}

func (l *location) ProvideCredential(key string) error {
	if key == "" {
		return ErrEmptyCredential
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.key != "" {
		if l.key == key {
			return nil
		}
		return ErrCredentialAlreadySet
	}
	l.key = key
	log.Debug("maps credential provided")
	return nil
}

func (l *location) Credential() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.key == "" {
		return "", ErrNoCredential
	}
	return l.key, nil
}

func (l *location) Provided() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.key != ""
}
