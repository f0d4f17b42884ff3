package trace

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderTraceparent = "Traceparent"
)

type traceContextKey struct{}

// GetOrGenTraceID returns the trace id of the request, generating one when
// the caller did not send any. The id is also stored in the request context.
func GetOrGenTraceID(c *gin.Context) string {
	traceID := GetTraceIDInGinContext(c)
	if traceID == "" {
		traceID = GetOrGenTraceIDFromContext(c.Request.Context())
	}
	c.Set(HeaderRequestID, traceID)
	c.Request = c.Request.WithContext(WithTraceID(c.Request.Context(), traceID))
	return traceID
}

func GetTraceIDInGinContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if traceID, ok := c.Get(HeaderRequestID); ok {
		if tid, ok := traceID.(string); ok {
			return tid
		}
	}
	if c.Request == nil {
		return ""
	}
	if id := traceIDFromSpan(c.Request.Context()); id != "" {
		return id
	}
	if tp := c.Request.Header.Get(HeaderTraceparent); tp != "" {
		if id := TraceIDFromTraceparent(tp); id != "" {
			return id
		}
	}
	return c.Request.Header.Get(HeaderRequestID)
}

// TraceIDFromTraceparent extracts the trace id of a W3C traceparent header.
func TraceIDFromTraceparent(traceparent string) string {
	parts := strings.Split(traceparent, "-")
	if len(parts) == 4 {
		return parts[1]
	}
	return ""
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceContextKey{}, traceID)
}

// GetTraceIDFromContext looks up the trace id stored by WithTraceID, then the otel span.
func GetTraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if c, ok := ctx.(*gin.Context); ok && c.Request != nil {
		ctx = c.Request.Context()
	}
	if id, ok := ctx.Value(traceContextKey{}).(string); ok && id != "" {
		return id
	}
	return traceIDFromSpan(ctx)
}

func GetOrGenTraceIDFromContext(ctx context.Context) string {
	if id := GetTraceIDFromContext(ctx); id != "" {
		return id
	}
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func traceIDFromSpan(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		return spanCtx.TraceID().String()
	}
	return ""
}
