package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/auth"
	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler/broadcast"
	"github.com/broadcastr/broadcastr-backend/internal/handler/directmessage"
	"github.com/broadcastr/broadcastr-backend/internal/handler/following"
	"github.com/broadcastr/broadcastr-backend/internal/handler/health"
	"github.com/broadcastr/broadcastr-backend/internal/handler/like"
	"github.com/broadcastr/broadcastr-backend/internal/handler/listening"
	"github.com/broadcastr/broadcastr-backend/internal/handler/metrics"
	"github.com/broadcastr/broadcastr-backend/internal/handler/profile"
	"github.com/broadcastr/broadcastr-backend/internal/handler/songswap"
	"github.com/broadcastr/broadcastr-backend/internal/monitoring"
	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

type Handler struct {
	ProfileHandler       profile.IHandler
	SongSwapHandler      songswap.IHandler
	BroadcastHandler     broadcast.IHandler
	LikeHandler          like.IHandler
	FollowingHandler     following.IHandler
	DirectMessageHandler directmessage.IHandler
	ListeningHandler     listening.IHandler
	HealthHandler        health.IHealthHandler
	MetricsHandler       *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	sessions *auth.Registry,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry,
	jobStatusManager *monitoring.JobStatusManager) *Handler {
	return &Handler{
		ProfileHandler:       profile.New(ctrl, sessions, logger),
		SongSwapHandler:      songswap.New(ctrl, logger),
		BroadcastHandler:     broadcast.New(ctrl, logger),
		LikeHandler:          like.New(ctrl, logger),
		FollowingHandler:     following.New(ctrl, logger),
		DirectMessageHandler: directmessage.New(ctrl, logger),
		ListeningHandler:     listening.New(ctrl, logger),
		HealthHandler:        health.New(appConfig, logger, db, jobStatusManager),
		MetricsHandler:       metrics.NewMetricsHandler(metricsRegistry),
	}
}
