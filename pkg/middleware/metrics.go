package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
)

type MetricsConfig struct {
	Skipper echo_middleware.Skipper
	Metrics *instrumentation.Metrics
}

// MatchedRoute resolves the registered route pattern of the request,
// keeping path parameters out of metric labels.
func MatchedRoute(ctx echo.Context) string {
	pathx := ctx.Path()
	for _, r := range ctx.Echo().Routes() {
		if pathx == r.Path {
			return r.Path
		}
	}
	return ""
}

func mapStatus(status int) string {
	switch {
	case status >= 100 && status < 200:
		return "1xx"
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return ""
	}
}

func CreateMetricsMiddleware(metrics *instrumentation.Metrics) echo.MiddlewareFunc {
	return MetricsMiddlewareWithConfig(&MetricsConfig{
		Skipper: echo_middleware.DefaultSkipper,
		Metrics: metrics,
	})
}

func MetricsMiddlewareWithConfig(config *MetricsConfig) echo.MiddlewareFunc {
	if config == nil || config.Metrics == nil {
		panic("config.Metrics can not be nil")
	}
	if config.Skipper == nil {
		config.Skipper = echo_middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			if config.Skipper(ctx) {
				return next(ctx)
			}
			method := ctx.Request().Method
			path := MatchedRoute(ctx)
			err := next(ctx)
			status := mapStatus(ctx.Response().Status)
			config.Metrics.HttpStatusHistogram.WithLabelValues(status, method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
