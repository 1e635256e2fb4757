// app/echoServer/middleware.go
package echoServer

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/Bennnhere/LendIt-app/util/metrics"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo, log *slog.Logger) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog(log))
}

// Slog logs one line per request and feeds the latency histogram.
func Slog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo's error handler set the final status before we read it
				c.Error(err)
			}
			lat := time.Since(start)

			status := c.Response().Status
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"latency_ms", lat.Milliseconds(),
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			metrics.ObserveHTTP(c.Request().Method, c.Path(), strconv.Itoa(status), lat.Seconds())
			return nil
		}
	}
}
