package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once         sync.Once
	copyDuration prom.Histogram
	filesCopied  prom.Counter
	bytesCopied  prom.Counter
	outcomes     *prom.CounterVec
	lastSuccess  prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.copyDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docfeatures",
			Name:      "copy_duration_seconds",
			Help:      "Duration of feature copy runs",
			Buckets:   prom.DefBuckets,
		})
		pr.filesCopied = prom.NewCounter(prom.CounterOpts{
			Namespace: "docfeatures",
			Name:      "files_copied_total",
			Help:      "Feature files copied into the site directory",
		})
		pr.bytesCopied = prom.NewCounter(prom.CounterOpts{
			Namespace: "docfeatures",
			Name:      "bytes_copied_total",
			Help:      "Bytes of feature data copied into the site directory",
		})
		pr.outcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docfeatures",
			Name:      "copy_outcomes_total",
			Help:      "Copy runs by outcome",
		}, []string{"outcome"})
		pr.lastSuccess = prom.NewGauge(prom.GaugeOpts{
			Namespace: "docfeatures",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last copy run that did not fail",
		})
		reg.MustRegister(pr.copyDuration, pr.filesCopied, pr.bytesCopied, pr.outcomes, pr.lastSuccess)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveCopyDuration(d time.Duration) {
	if p == nil || p.copyDuration == nil {
		return
	}
	p.copyDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFilesCopied(n int) {
	if p == nil || p.filesCopied == nil || n <= 0 {
		return
	}
	p.filesCopied.Add(float64(n))
}

func (p *PrometheusRecorder) AddBytesCopied(n int64) {
	if p == nil || p.bytesCopied == nil || n <= 0 {
		return
	}
	p.bytesCopied.Add(float64(n))
}

func (p *PrometheusRecorder) IncCopyOutcome(outcome OutcomeLabel) {
	if p == nil || p.outcomes == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
	if outcome != OutcomeFailed {
		p.lastSuccess.SetToCurrentTime()
	}
}
