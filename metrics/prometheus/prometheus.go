// Package prometheus provides Prometheus implementation of distrib.MetricsWriter.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Writer is a Prometheus implementation of distrib.MetricsWriter.
type Writer struct {
	name string
}

var (
	promDraws, promFallbacks *prometheus.CounterVec
	promCalls, promFails     *prometheus.CounterVec
)

func init() {
	promDraws = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distrib_draws",
		Help: "How many values drawn from the source.",
	}, []string{"provider"})
	promFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distrib_weights_fallback",
		Help: "How many weighted picks fell back to the last index.",
	}, []string{"provider"})

	promCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distrib_calls",
		Help: "How many operations called.",
	}, []string{"provider", "op"})
	promFails = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distrib_fails",
		Help: "How many operations failed due to invalid arguments.",
	}, []string{"provider", "op"})

	prometheus.MustRegister(promDraws, promFallbacks, promCalls, promFails)
}

// NewWriter makes writer of provider name.
func NewWriter(name string) *Writer {
	return &Writer{name: name}
}

func (w Writer) SourceDraw() {
	promDraws.WithLabelValues(w.name).Inc()
}

func (w Writer) ProviderCall(op string) {
	promCalls.WithLabelValues(w.name, op).Inc()
}

func (w Writer) ProviderFail(op string) {
	promFails.WithLabelValues(w.name, op).Inc()
}

func (w Writer) WeightsFallback() {
	promFallbacks.WithLabelValues(w.name).Inc()
}
