// Package metric wraps the Prometheus vectors used to instrument menu rendering.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// DurationObserver records durations by label values.
type DurationObserver interface {
	ObserveSince(start time.Time, val ...string)
}

// Counter is a labeled Prometheus counter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounter registers a counter with the default Prometheus registerer.
func NewCounter(name, help string, labels ...string) IncrementalCounter {
	return NewCounterWithRegistry(prometheus.DefaultRegisterer, name, help, labels...)
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// Histogram is a labeled Prometheus histogram of seconds.
type Histogram struct {
	Name string
	Help string

	vec *prometheus.HistogramVec
}

func (h *Histogram) ObserveSince(start time.Time, val ...string) {
	h.vec.WithLabelValues(val...).Observe(time.Since(start).Seconds())
}

// NewHistogramWithRegistry registers a histogram using buckets suited to
// sub-millisecond work such as rendering a menu.
func NewHistogramWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) DurationObserver {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, labels)

	reg.MustRegister(hist)

	return &Histogram{
		Name: name,
		Help: help,
		vec:  hist,
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
