// Package telemetry configures the OpenTelemetry tracer and meter providers
// used to instrument database access.
//
// Two exporters are supported: "none" installs no-op providers and
// "stdout" writes spans and metrics as JSON to the given writer. The
// configured providers are also installed as the otel globals.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/joycesaquino/customer/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// ErrUnknownExporter is returned by Setup for an unsupported exporter name.
var ErrUnknownExporter = errors.New("unknown telemetry exporter")

const metricExportInterval = 30 * time.Second

// Providers holds the tracer and meter providers built by Setup.
type Providers struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	shutdown []func(context.Context) error
}

// Setup builds providers for cfg, installs them as the otel globals and
// returns them. Exported data is written to w when the exporter is
// "stdout".
func Setup(ctx context.Context, cfg config.Telemetry, w io.Writer) (*Providers, error) {
	switch cfg.Exporter {
	case "", config.ExporterNone:
		p := &Providers{
			TracerProvider: tracenoop.NewTracerProvider(),
			MeterProvider:  metricnoop.NewMeterProvider(),
		}
		p.install()
		return p, nil
	case config.ExporterStdout:
		return setupStdout(ctx, cfg, w)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
}

func setupStdout(_ context.Context, cfg config.Telemetry, w io.Writer) (*Providers, error) {
	res := resource.NewSchemaless(semconv.ServiceNameKey.String(cfg.ServiceName))

	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("error creating trace exporter: %w", err)
	}

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("error creating metric exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricExportInterval))),
		sdkmetric.WithResource(res),
	)

	p := &Providers{
		TracerProvider: tp,
		MeterProvider:  mp,
		shutdown:       []func(context.Context) error{tp.Shutdown, mp.Shutdown},
	}
	p.install()

	return p, nil
}

func (p *Providers) install() {
	otel.SetTracerProvider(p.TracerProvider)
	otel.SetMeterProvider(p.MeterProvider)
}

// Shutdown flushes pending telemetry and releases the exporters.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
