package middleware

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"opencsg.com/report-notifier/api/httpbase"
	"opencsg.com/report-notifier/common/config"
)

// NeedAPIKey rejects requests whose bearer token does not match Notifier.APIToken.
// An empty APIToken disables the check.
func NeedAPIKey(config *config.Config) gin.HandlerFunc {
	apiToken := config.Notifier.APIToken
	return func(c *gin.Context) {
		if apiToken == "" {
			c.Next()
			return
		}
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			slog.Info("missing authorization header", slog.String("url", c.Request.URL.Path))
			httpbase.UnauthorizedError(c, errors.New("missing Authorization header"))
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
			httpbase.UnauthorizedError(c, errors.New("invalid api key"))
			return
		}
		c.Next()
	}
}
