package worker

import "github.com/prometheus/client_golang/prometheus"

func registerMetrics(reg *prometheus.Registry, w *worker) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "worker",
		Name:      "received_total",
		Help:      "total count of background messages",
	}, func() float64 {
		return float64(w.metrics.received.Load())
	}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "push",
		Subsystem: "worker",
		Name:      "state",
		Help:      "bootstrap state: 0 uninitialized, 1 sdk_ready, 2 channel_active, 3 listening",
	}, func() float64 {
		return float64(w.State())
	}))
}
