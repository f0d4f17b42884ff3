package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	rntrace "opencsg.com/report-notifier/common/utils/trace"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(&ContextHandler{Handler: jsonHandler})
}

func TestContextHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	traceIDStr := "4bf92f3577b34da6a3ce929d0e0e4736"
	traceID, err := trace.TraceIDFromHex(traceIDStr)
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.With("component", "webhook").ErrorContext(ctx, "relay abandoned")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "relay abandoned", result["msg"])
	require.Equal(t, traceIDStr, result["trace_id"])
	require.Equal(t, "webhook", result["component"])
}

func TestContextHandler_RequestTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.InfoContext(rntrace.WithTraceID(context.Background(), "req-42"), "report sent")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "req-42", result["trace_id"])
}

func TestContextHandler_NoTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("startup")

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	_, ok := result["trace_id"]
	require.False(t, ok)
}
