package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/airportregistry/internal/metrics"
	"github.com/gin-gonic/gin"
)

// instrument logs every request and records it in metrics under its route
// pattern.
func instrument(logger *slog.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		m.Observe("http", c.Request.Method+" "+route, resultLabel(status), elapsed)

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("elapsed", elapsed),
		)
	}
}

func resultLabel(status int) string {
	switch {
	case status < http.StatusBadRequest:
		return "success"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusConflict:
		return "conflict"
	case status < http.StatusInternalServerError:
		return "invalid"
	default:
		return "error"
	}
}
