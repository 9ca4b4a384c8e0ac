package web

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"CryptoPulse/internal/logger"
	"CryptoPulse/internal/metrics"
)

// RequestLogging logs each request and records it in the metrics recorder.
// The route label is the registered path template to keep cardinality low.
func RequestLogging(log *logger.Logger, rec *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			latency := time.Since(start)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			rec.ObserveHTTP(route, req.Method, strconv.Itoa(status), latency)

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("remote", c.RealIP()),
				logger.Int("status", status),
				logger.Duration("latency", latency),
			}
			switch {
			case status >= 500:
				log.Error("http request", fields...)
			case status >= 400:
				log.Warn("http request", fields...)
			default:
				log.Info("http request", fields...)
			}
			return nil
		}
	}
}
