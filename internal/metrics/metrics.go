// Package metrics records collection and template activity with Prometheus
package metrics

//go:generate mockgen -destination=mock/mock_recorder.go -package=metricsmock github.com/KirkDiggler/ducttape-items/internal/metrics Recorder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Recorder receives item engine measurements
type Recorder interface {
	CollectionMutation(op string)
	CollectionFull()
	TemplateRender(result string, took time.Duration)
	TextureFallback()
}

// Nop discards every measurement
type Nop struct{}

func (Nop) CollectionMutation(string)            {}
func (Nop) CollectionFull()                      {}
func (Nop) TemplateRender(string, time.Duration) {}
func (Nop) TextureFallback()                     {}

// OrNop returns r, or a Nop when r is nil
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}
	return r
}

// Prometheus is a Recorder backed by Prometheus collectors
type Prometheus struct {
	CollectionMutations *prometheus.CounterVec
	CollectionFulls     prometheus.Counter
	TemplateRenders     *prometheus.CounterVec
	TemplateRenderTime  prometheus.Histogram
	TextureFallbacks    prometheus.Counter
}

// NewPrometheus creates the collectors and registers them on reg
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		return nil, errors.InvalidArgument("registerer cannot be nil")
	}

	p := &Prometheus{
		CollectionMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameCollectionMutations,
				Help: HelpTextCollectionMutations,
			},
			[]string{LabelOp},
		),
		CollectionFulls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricNameCollectionFull,
			Help: HelpTextCollectionFull,
		}),
		TemplateRenders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricNameTemplateRenders,
				Help: HelpTextTemplateRenders,
			},
			[]string{LabelResult},
		),
		TemplateRenderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricNameTemplateRenderTime,
			Help:    HelpTextTemplateRenderTime,
			Buckets: RenderLatencyBuckets,
		}),
		TextureFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricNameTextureFallbacks,
			Help: HelpTextTextureFallbacks,
		}),
	}

	for _, c := range []prometheus.Collector{
		p.CollectionMutations,
		p.CollectionFulls,
		p.TemplateRenders,
		p.TemplateRenderTime,
		p.TextureFallbacks,
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metric")
		}
	}

	return p, nil
}

func (p *Prometheus) CollectionMutation(op string) {
	p.CollectionMutations.WithLabelValues(op).Inc()
}

func (p *Prometheus) CollectionFull() {
	p.CollectionFulls.Inc()
}

func (p *Prometheus) TemplateRender(result string, took time.Duration) {
	p.TemplateRenders.WithLabelValues(result).Inc()
	p.TemplateRenderTime.Observe(took.Seconds())
}

func (p *Prometheus) TextureFallback() {
	p.TextureFallbacks.Inc()
}
