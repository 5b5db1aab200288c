package middleware

import (
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured log line per request. Errors recorded
// with c.Error are attached; server errors are logged at error level.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", GetRequestID(c)),
		}
		if sess := GetSession(c); sess.SignedIn() {
			fields = append(fields, zap.String("email", sess.Email))
		}

		err := c.Errors.Last()
		switch {
		case err == nil:
			log.Info("request processed", fields...)
		case apperrors.KindOf(err.Err) == apperrors.KindServerError:
			log.Error("request failed", append(fields, zap.Error(err.Err))...)
		default:
			log.Info("request rejected", append(fields, zap.String("error", err.Err.Error()))...)
		}
	}
}

// GetSession returns the session loaded for this request, or an anonymous one.
func GetSession(c *gin.Context) *session.Session {
	return session.FromContext(c.Request.Context())
}
