// Package tracingmetrics records finished spans as Prometheus metrics, partitioned by the
// canonical status code of each span.
package tracingmetrics

import (
	"errors"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/tracestatus/tracing"
)

const (
	SpanCounter       = "spans"
	DurationHistogram = "span_duration_seconds"

	NameLabel = "name"
	CodeLabel = "code"
)

// ErrNilRegisterer is returned by NewMeasures when no prometheus.Registerer is supplied.
var ErrNilRegisterer = errors.New("a prometheus registerer is required")

// Options configures the metrics created by NewMeasures.  The zero value is usable.
type Options struct {
	Namespace string
	Subsystem string

	// Buckets is the set of histogram buckets for span durations.  If unset,
	// prometheus.DefBuckets is used.
	Buckets []float64
}

func (o Options) buckets() []float64 {
	if len(o.Buckets) > 0 {
		return o.Buckets
	}

	return prometheus.DefBuckets
}

// Measures is the set of metrics describing finished spans.
type Measures struct {
	// Spans counts finished spans, labeled by span name and status code name
	Spans metrics.Counter

	// Duration observes span durations in seconds, labeled by span name
	Duration metrics.Histogram
}

// NewMeasures creates and registers the span metrics.  A registration failure, for example a
// duplicate registration, is returned as is.
func NewMeasures(r prometheus.Registerer, o Options) (Measures, error) {
	if r == nil {
		return Measures{}, ErrNilRegisterer
	}

	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: o.Namespace,
			Subsystem: o.Subsystem,
			Name:      SpanCounter,
			Help:      "The count of finished spans, by name and status code",
		},
		[]string{NameLabel, CodeLabel},
	)

	histogramVec := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: o.Namespace,
			Subsystem: o.Subsystem,
			Name:      DurationHistogram,
			Help:      "The durations of finished spans, by name",
			Buckets:   o.buckets(),
		},
		[]string{NameLabel},
	)

	for _, c := range []prometheus.Collector{counterVec, histogramVec} {
		if err := r.Register(c); err != nil {
			return Measures{}, err
		}
	}

	return Measures{
		Spans:    gokitprometheus.NewCounter(counterVec),
		Duration: gokitprometheus.NewHistogram(histogramVec),
	}, nil
}

// Observe records each span.  Spans with a code outside the canonical set are counted under
// that code's String form, e.g. "StatusCode(42)".
func (m Measures) Observe(spans ...tracing.Span) {
	for _, s := range spans {
		m.Spans.With(NameLabel, s.Name(), CodeLabel, s.Status().Code().String()).Add(1)
		m.Duration.With(NameLabel, s.Name()).Observe(s.Duration().Seconds())
	}
}
