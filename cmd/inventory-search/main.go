package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redhatinsights/inventory-search-backend/pkg/config"
	"github.com/redhatinsights/inventory-search-backend/pkg/instrumentation"
	"github.com/redhatinsights/inventory-search-backend/pkg/router"
	"github.com/rs/zerolog/log"
)

func main() {
	config.Load()
	config.ConfigureLogging()

	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())
	go startMetricsServer(metrics)

	engine := router.ConfigureEchoWithMetrics(metrics)
	err := engine.Start(":8000")
	if err != nil {
		log.Fatal().Err(err).Msg("echo server failed")
	}
}

func startMetricsServer(metrics *instrumentation.Metrics) {
	conf := config.Get().Metrics

	e := echo.New()
	e.HideBanner = true
	e.GET(conf.Path, echo.WrapHandler(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	err := e.Start(fmt.Sprintf(":%d", conf.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("metrics server failed")
	}
}
