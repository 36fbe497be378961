//go:generate mockgen -destination mock_lifecycle/mock_lifecycle.go github.com/tastetube/push-bootstrap/lifecycle Lifecycle

package lifecycle

import (
	"sync/atomic"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/domain"
)

const CName = "native.lifecycle"

var log = logger.NewNamed(CName)

func New() Lifecycle {
	return new(lifecycle)
}

// Lifecycle is the base application startup sequence.
type Lifecycle interface {
	// Startup continues the host startup and reports whether the launch succeeded
	Startup(lc *domain.LaunchContext, opts domain.LaunchOptions) bool
	app.Component
}

type lifecycle struct {
	launched atomic.Bool
}

func (l *lifecycle) Init(a *app.App) (err error) {
	return nil
}

func (l *lifecycle) Name() (name string) {
	return CName
}

func (l *lifecycle) Startup(lc *domain.LaunchContext, opts domain.LaunchOptions) bool {
	if !l.launched.CompareAndSwap(false, true) {
		log.Warn("startup called more than once")
		return false
	}
	fields := []zap.Field{zap.Int("options", len(opts))}
	if lc != nil {
		fields = append(fields, zap.Int("pid", lc.Pid), zap.Strings("args", lc.Args))
	}
	log.Info("application launched", fields...)
	return true
}
