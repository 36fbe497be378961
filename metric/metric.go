package metric

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const CName = "push.metric"

var log = logger.NewNamed(CName)

type Config struct {
	Addr string `yaml:"addr"`
}

type configSource interface {
	GetMetric() Config
}

func New() Metric {
	return new(metric)
}

type Metric interface {
	Registry() *prometheus.Registry
	app.ComponentRunnable
}

type metric struct {
	registry *prometheus.Registry
	addr     string
	srv      *http.Server
}

func (m *metric) Init(a *app.App) (err error) {
	m.addr = a.MustComponent("config").(configSource).GetMetric().Addr
	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return
}

func (m *metric) Name() (name string) {
	return CName
}

func (m *metric) Registry() *prometheus.Registry {
	return m.registry
}

func (m *metric) Run(ctx context.Context) (err error) {
	if m.addr == "" {
		return nil
	}
	lis, err := net.Listen("tcp", m.addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := m.srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", zap.Error(err))
		}
	}()
	log.Info("metrics server started", zap.String("addr", lis.Addr().String()))
	return nil
}

func (m *metric) Close(ctx context.Context) (err error) {
	if m.srv != nil {
		return m.srv.Shutdown(ctx)
	}
	return nil
}
