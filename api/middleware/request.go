package middleware

import (
	"github.com/gin-gonic/gin"
	"opencsg.com/report-notifier/common/utils/trace"
)

// Request tags the request with a trace id and echoes it back in X-Request-ID.
func Request() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		traceID := trace.GetOrGenTraceID(ctx)
		ctx.Writer.Header().Set(trace.HeaderRequestID, traceID)
		ctx.Next()
	}
}
