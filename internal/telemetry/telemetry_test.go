package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_None(t *testing.T) {
	var buf bytes.Buffer
	p, err := Setup(context.Background(), config.Telemetry{Exporter: config.ExporterNone}, &buf)
	require.NoError(t, err)

	_, span := p.TracerProvider.Tracer("test").Start(context.Background(), "noop")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Empty(t, buf.String())
	assert.False(t, span.SpanContext().IsValid())
}

func TestSetup_Stdout(t *testing.T) {
	var buf bytes.Buffer
	p, err := Setup(context.Background(), config.Telemetry{Exporter: config.ExporterStdout, ServiceName: "customer-test"}, &buf)
	require.NoError(t, err)

	_, isSDK := p.TracerProvider.(*sdktrace.TracerProvider)
	assert.True(t, isSDK)
	assert.Equal(t, p.TracerProvider, otel.GetTracerProvider())

	_, span := otel.Tracer("test").Start(context.Background(), "customers.select")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "customers.select")
	assert.Contains(t, buf.String(), "customer-test")
}

func TestSetup_UnknownExporter(t *testing.T) {
	_, err := Setup(context.Background(), config.Telemetry{Exporter: "zipkin"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownExporter)
}
