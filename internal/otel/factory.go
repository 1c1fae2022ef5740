package otel

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// MetricFactory creates instruments named "<prefix>.<name>" on one meter. Packages call
// it from init(); the global meter delegates to the provider installed later by Init.
type MetricFactory struct {
	meter  metric.Meter
	prefix string
}

func NewFactory(meterName, prefix string) *MetricFactory {
	return newFactoryWithMeter(otel.Meter(meterName), prefix)
}

func newFactoryWithMeter(meter metric.Meter, prefix string) *MetricFactory {
	return &MetricFactory{
		meter:  meter,
		prefix: prefix,
	}
}

func (f *MetricFactory) name(suffix string) string {
	if f.prefix == "" {
		return suffix
	}
	return f.prefix + "." + suffix
}

func must[T any](kind, name string, inst T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("failed to create %s %s: %v", kind, name, err))
	}
	return inst
}

func (f *MetricFactory) Int64Counter(target *metric.Int64Counter, name string, options ...metric.Int64CounterOption) {
	full := f.name(name)
	c, err := f.meter.Int64Counter(full, options...)
	*target = must("counter", full, c, err)
}

func (f *MetricFactory) Int64UpDownCounter(target *metric.Int64UpDownCounter, name string, options ...metric.Int64UpDownCounterOption) {
	full := f.name(name)
	c, err := f.meter.Int64UpDownCounter(full, options...)
	*target = must("up-down counter", full, c, err)
}

func (f *MetricFactory) Float64Histogram(target *metric.Float64Histogram, name string, options ...metric.Float64HistogramOption) {
	full := f.name(name)
	h, err := f.meter.Float64Histogram(full, options...)
	*target = must("histogram", full, h, err)
}
