package server

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/broadcastr/broadcastr-backend/internal/auth"
	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/indexer"
	"github.com/broadcastr/broadcastr-backend/internal/lastfm"
	"github.com/broadcastr/broadcastr-backend/internal/monitoring"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	pgstore "github.com/broadcastr/broadcastr-backend/internal/store/postgres"
	"github.com/broadcastr/broadcastr-backend/internal/transport/http"
	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
	"github.com/broadcastr/broadcastr-backend/internal/utils/webhook"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	s := store.New(db)

	lastfmClient := lastfm.New(appConfig, logger)
	sessions := auth.NewRegistry()
	ctrl := controller.New(db, s, lastfmClient, logger, appConfig)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)
	jobStatusManager := monitoring.NewJobStatusManager()
	jobStatusManager.MustRegister(metricsRegistry)

	idx := indexer.New(db, s, ctrl, logger, jobStatusManager)
	uptimeWebhook := webhook.New(logger)

	c := cron.New()
	_, err := c.AddFunc(appConfig.RefreshPeriod, func() {
		if err := idx.RefreshStaleListeningData(); err != nil {
			logger.Error("[Init][RefreshStaleListeningData]", map[string]string{
				"error": err.Error(),
			})
			return
		}
		uptimeWebhook.CallUptimeWebhook(context.Background(), appConfig.UptimeWebhookURL)
	})
	if err != nil {
		logger.Fatal("failed to schedule listening refresh", map[string]string{
			"spec":  appConfig.RefreshPeriod,
			"error": err.Error(),
		})
	}
	c.Start()

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, sessions, db,
		metricsRegistry, httpMetrics, jobStatusManager)

	httpServer.Run(":" + appConfig.ApiServer.Port)
}
