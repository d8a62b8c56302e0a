// README: Request logging middleware (logrus fields plus parsed user agent).
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	ua "github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one entry per request once the handler chain finishes.
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString(RequestIDKey),
		}
		for k, v := range clientFields(c.Request.UserAgent()) {
			fields[k] = v
		}

		entry := logger.WithFields(fields)
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("request failed")
			return
		}
		switch {
		case status >= 500:
			entry.Error("request completed with server error")
		case status >= 400:
			entry.Warn("request completed with client error")
		default:
			entry.Info("request completed")
		}
	}
}

func clientFields(userAgent string) logrus.Fields {
	if userAgent == "" {
		return logrus.Fields{"device": "unknown"}
	}
	p := ua.New(userAgent)
	browser, version := p.Browser()
	device := "desktop"
	if p.Mobile() {
		device = "mobile"
	}
	return logrus.Fields{
		"device":      device,
		"browser":     browser,
		"browser_ver": version,
		"os":          p.OS(),
		"bot":         p.Bot(),
	}
}
