package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request once the handler chain has finished.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		format := "%s %s -> %d (%s) ip=%s"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP()}

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, format, args...)
		case status >= 400:
			mw.l.Warnf(ctx, format, args...)
		default:
			mw.l.Infof(ctx, format, args...)
		}
	}
}
