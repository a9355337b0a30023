package policy

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName     = "github.com/sizekit/adaptivesize/policy"
	metricEdenSize          = "gc.policy.eden_size"
	metricSurvivorSize      = "gc.policy.survivor_size"
	metricOldSize           = "gc.policy.old_size"
	metricTenuringThreshold = "gc.policy.tenuring_threshold"
	metricPauseDuration     = "gc.policy.pause.duration"
)

// Metrics publishes an Adaptive policy's generation sizes and pause
// durations to an OpenTelemetry MeterProvider. It is optional: a
// policy runs correctly with no Metrics attached.
type Metrics struct {
	EdenSize          metric.Int64ObservableGauge
	SurvivorSize      metric.Int64ObservableGauge
	OldSize           metric.Int64ObservableGauge
	TenuringThreshold metric.Int64ObservableGauge
	PauseDuration     metric.Int64Histogram

	policy *Adaptive
	meter  metric.Meter
	regs   []metric.Registration
}

// NewMetrics registers observable gauges for a's generation sizes and
// a histogram for collection pause durations against mp.
func NewMetrics(a *Adaptive, mp metric.MeterProvider) *Metrics {
	m := &Metrics{policy: a, meter: mp.Meter(instrumentationName)}

	var err error
	m.EdenSize, err = m.meter.Int64ObservableGauge(metricEdenSize,
		metric.WithDescription("Target size of the eden space in bytes."))
	if err != nil {
		otel.Handle(err)
	}
	m.SurvivorSize, err = m.meter.Int64ObservableGauge(metricSurvivorSize,
		metric.WithDescription("Target size of a survivor space in bytes."))
	if err != nil {
		otel.Handle(err)
	}
	m.OldSize, err = m.meter.Int64ObservableGauge(metricOldSize,
		metric.WithDescription("Target size of the old generation in bytes."))
	if err != nil {
		otel.Handle(err)
	}
	m.TenuringThreshold, err = m.meter.Int64ObservableGauge(metricTenuringThreshold,
		metric.WithDescription("Current tenuring threshold in survivor passes."))
	if err != nil {
		otel.Handle(err)
	}
	m.PauseDuration, err = m.meter.Int64Histogram(metricPauseDuration,
		metric.WithDescription("Measures the duration of stop-the-world collection pauses."),
		metric.WithUnit("ms"))
	if err != nil {
		otel.Handle(err)
	}

	reg, err := m.meter.RegisterCallback(m.collect,
		m.EdenSize, m.SurvivorSize, m.OldSize, m.TenuringThreshold)
	if err != nil {
		otel.Handle(err)
	}
	m.regs = append(m.regs, reg)

	return m
}

// collect reports the policy's current sizes to the registered
// observable gauges. Called back by the MeterProvider on its own
// collection schedule, not from any policy lifecycle method.
func (m *Metrics) collect(_ context.Context, o metric.Observer) error {
	o.ObserveInt64(m.EdenSize, m.policy.EdenSize())
	o.ObserveInt64(m.SurvivorSize, m.policy.SurvivorSize())
	o.ObserveInt64(m.OldSize, m.policy.OldSize())
	o.ObserveInt64(m.TenuringThreshold, int64(m.policy.TenuringThreshold()))
	return nil
}

// RecordPause records a completed collection's pause duration.
func (m *Metrics) RecordPause(ctx context.Context, pauseNanos int64) {
	m.PauseDuration.Record(ctx, pauseNanos/int64(time.Millisecond))
}

// Close unregisters every callback this Metrics registered.
func (m *Metrics) Close() error {
	for _, reg := range m.regs {
		_ = reg.Unregister()
	}
	return nil
}
