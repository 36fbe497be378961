package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/cheggaaa/mb/v3"
	"go.uber.org/zap"

	"github.com/tastetube/push-bootstrap/domain"
	"github.com/tastetube/push-bootstrap/metric"
	"github.com/tastetube/push-bootstrap/repo/installrepo"
	"github.com/tastetube/push-bootstrap/sdk"
)

const CName = "worker"

var log = logger.NewNamed(CName)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyInstalled  = errors.New("worker already installed")
)

const defaultInboxSize = 100

func New() Worker {
	return new(worker)
}

// Worker is the background bootstrap: it wires the messaging SDK and keeps one handler for messages
// that arrive while no foreground context is active.
type Worker interface {
	// Install loads the sdk, initializes the messaging client and registers the background handler.
	// It stops at the first failure; a worker is installed at most once.
	Install(ctx context.Context) error
	State() State
	app.ComponentRunnable
}

type worker struct {
	sdk         sdk.SDK
	installRepo installrepo.InstallRepo
	conf        Config

	state     State
	stateMu   sync.Mutex
	installMu sync.Mutex

	handler  sdk.BackgroundHandler
	client   sdk.MessagingClient
	inbox    *mb.MB[domain.InboundMessage]
	loopDone chan struct{}

	diag    *zap.Logger
	process func(msg domain.InboundMessage)
	metrics struct {
		received atomic.Uint64
	}
}

func (w *worker) Init(a *app.App) (err error) {
	w.sdk = a.MustComponent(sdk.CName).(sdk.SDK)
	w.conf = a.MustComponent("config").(configSource).GetWorker()
	if r, ok := a.Component(installrepo.CName).(installrepo.InstallRepo); ok {
		w.installRepo = r
	}
	if m, ok := a.Component(metric.CName).(metric.Metric); ok {
		registerMetrics(m.Registry(), w)
	}
	size := w.conf.InboxSize
	if size <= 0 {
		size = defaultInboxSize
	}
	w.inbox = mb.New[domain.InboundMessage](size)
	if w.diag == nil {
		w.diag = log.Logger
	}
	if w.process == nil {
		w.process = w.record
	}
	return
}

func (w *worker) Name() (name string) {
	return CName
}

func (w *worker) Run(ctx context.Context) (err error) {
	return w.Install(ctx)
}

func (w *worker) Install(ctx context.Context) (err error) {
	w.installMu.Lock()
	defer w.installMu.Unlock()
	if w.State() != StateUninitialized {
		return ErrAlreadyInstalled
	}
	st := time.Now()

	ns, err := w.sdk.Load(ctx, sdk.Required)
	if err != nil {
		return fmt.Errorf("load sdk: %w", err)
	}
	if err = w.advance(StateSDKReady); err != nil {
		return
	}

	client, err := ns.Initialize(ctx, w.conf.Bundle)
	if err != nil {
		return fmt.Errorf("initialize messaging: %w", err)
	}
	if err = w.advance(StateChannelActive); err != nil {
		return
	}

	w.handler = sdk.HandlerFunc(w.enqueue)
	if err = client.OnBackgroundMessage(w.handler); err != nil {
		return fmt.Errorf("register background handler: %w", err)
	}
	w.client = client
	if err = w.advance(StateListening); err != nil {
		return
	}
	w.loopDone = make(chan struct{})
	go w.loop()

	log.Info("listening for background messages", zap.String("appId", w.conf.Bundle.AppId), zap.Duration("dur", time.Since(st)))
	w.saveInstallation(ctx)
	return nil
}

func (w *worker) State() State {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return w.state
}

func (w *worker) advance(next State) error {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	if next != w.state+1 {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.state, next)
	}
	log.Debug("state changed", zap.Stringer("from", w.state), zap.Stringer("to", next))
	w.state = next
	return nil
}

// enqueue is called by the sdk, possibly from several goroutines
func (w *worker) enqueue(msg domain.InboundMessage) {
	if err := w.inbox.Add(context.Background(), msg); err != nil {
		log.Warn("background message dropped", zap.String("messageId", msg.MessageId), zap.Error(err))
	}
}

// loop processes messages one at a time
func (w *worker) loop() {
	defer close(w.loopDone)
	for {
		msgs, err := w.inbox.Wait(context.Background())
		if err != nil {
			return
		}
		for _, msg := range msgs {
			w.process(msg)
		}
	}
}

// record is the diagnostic emission for one message. Emission failures are not delivery failures.
func (w *worker) record(msg domain.InboundMessage) {
	w.metrics.received.Add(1)
	defer func() {
		if rec := recover(); rec != nil {
			log.Warn("diagnostic emission failed", zap.Any("panic", rec))
		}
	}()
	w.diag.Info("onBackgroundMessage", zap.Any("message", msg))
}

func (w *worker) saveInstallation(ctx context.Context) {
	if w.installRepo == nil {
		return
	}
	err := w.installRepo.Add(ctx, domain.Installation{
		Host:      domain.HostWorker,
		AppId:     w.conf.Bundle.AppId,
		ProjectId: w.conf.Bundle.ProjectId,
		State:     StateListening.String(),
	})
	if err != nil {
		log.Warn("can't save installation", zap.Error(err))
	}
}

func (w *worker) Close(ctx context.Context) (err error) {
	// the client stops first, so nothing is handed to a closed inbox
	if w.client != nil {
		if cErr := w.client.Close(); cErr != nil {
			log.Warn("can't close messaging client", zap.Error(cErr))
		}
	}
	if w.inbox != nil {
		_ = w.inbox.Close()
	}
	if w.loopDone != nil {
		select {
		case <-w.loopDone:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
