package otel_test

import (
	"context"
	"errors"
	"fmt"
	"scams/infras/otel"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type hour int

func (h hour) String() string {
	return fmt.Sprintf("%02d:00", int(h))
}

func newSpan(t *testing.T) (*tracetest.SpanRecorder, otel.Scope) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.Create")

	return recorder, otel.NewScope(span)
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	values := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		values[kv.Key] = kv.Value
	}

	return values
}

func TestScope_SetAttributes(t *testing.T) {
	recorder, scope := newSpan(t)

	scope.SetAttributes(map[string]any{
		"room_id":    int64(3),
		"start_time": hour(9),
		"created_at": time.Date(2025, 5, 12, 8, 0, 0, 0, time.UTC),
		"waited":     1500 * time.Millisecond,
		"ratio":      0.5,
		"empty":      true,
	})
	scope.SetAttribute("device_ids", []int64{1, 2})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	values := attributes(spans[0])
	assert.Equal(t, int64(3), values["room_id"].AsInt64())
	assert.Equal(t, "09:00", values["start_time"].AsString())
	assert.Equal(t, "2025-05-12T08:00:00Z", values["created_at"].AsString())
	assert.Equal(t, "1.5s", values["waited"].AsString())
	assert.InDelta(t, 0.5, values["ratio"].AsFloat64(), 0)
	assert.True(t, values["empty"].AsBool())
	assert.Equal(t, []int64{1, 2}, values["device_ids"].AsInt64Slice())
}

func TestScope_TraceIfError(t *testing.T) {
	recorder, scope := newSpan(t)

	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("insert failed"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "insert failed", spans[0].Status().Description)
}

func TestScope_CancelledIsNotAnError(t *testing.T) {
	recorder, scope := newSpan(t)

	scope.TraceError(fmt.Errorf("query rooms: %w", context.Canceled))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "request cancelled", spans[0].Events()[0].Name)
}
