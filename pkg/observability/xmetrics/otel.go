package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xguard/pkg/observability/xmetrics"

	metricDecisionTotal    = "xguard.decision.total"
	metricDecisionDuration = "xguard.decision.duration"
)

type otelConfig struct {
	instrumentationName string
	meterProvider       metric.MeterProvider
}

// Option 定义 OTel Observer 的配置选项。
type Option func(*otelConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithMeterProvider 设置 MeterProvider。
// 默认使用全局 Provider（otel.GetMeterProvider）。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// otelObserver 是基于 OpenTelemetry 指标的 Observer 实现。
type otelObserver struct {
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTelObserver 创建基于 OpenTelemetry 的 Observer。
func NewOTelObserver(opts ...Option) (Observer, error) {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	total, err := meter.Int64Counter(
		metricDecisionTotal,
		metric.WithDescription("Total number of guard decisions"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		metricDecisionDuration,
		metric.WithDescription("Guard decision duration including address resolution"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("xmetrics: create histogram: %w", err)
	}

	return &otelObserver{
		total:    total,
		duration: duration,
	}, nil
}

// ObserveDecision 记录一次决策到 OTel 指标。
func (o *otelObserver) ObserveDecision(ctx context.Context, d Decision) {
	if ctx == nil {
		ctx = context.Background()
	}
	attrs := metric.WithAttributes(
		attribute.String("verdict", string(d.Verdict)),
		attribute.String("reason", d.Reason),
		attribute.String("scheme", d.Scheme),
	)
	o.total.Add(ctx, 1, attrs)
	o.duration.Record(ctx, d.Duration.Seconds(), attrs)
}
