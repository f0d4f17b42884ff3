package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	bld "opencsg.com/report-notifier/builder/prometheus"
	"opencsg.com/report-notifier/common/utils/trace"
)

// Recovery returns a middleware that recovers from any panics and writes a 500 if there was one.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				if bld.HttpPanicsTotal != nil {
					bld.HttpPanicsTotal.Inc()
				}
				slog.ErrorContext(c.Request.Context(), "[Recovery from panic]",
					slog.String("trace_id", trace.GetTraceIDInGinContext(c)),
					slog.String("method", c.Request.Method),
					slog.String("url", c.Request.URL.RequestURI()),
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}
