package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"     // swagger embed files
	ginSwagger "github.com/swaggo/gin-swagger" // gin-swagger middleware
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/auth"
	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler"
	"github.com/broadcastr/broadcastr-backend/internal/monitoring"
	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

func setupCORS(r *gin.Engine, cfg *config.AppConfig) {
	corsOrigins := strings.Split(cfg.ApiServer.AllowedOrigins, ";")
	r.Use(cors.New(
		cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
			AllowHeaders: []string{
				"Origin", "Host", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Accept",
				"X-CSRF-Token", "Authorization", "X-Requested-With", "X-Access-Token",
			},
			AllowCredentials: true,
		},
	))
}

func NewHttpServer(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	sessions *auth.Registry,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry,
	httpMetrics *monitoring.HTTPMetrics,
	jobStatusManager *monitoring.JobStatusManager) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		gin.Recovery(),
	)
	setupCORS(r, appConfig)
	r.Use(monitoring.HTTPMetricsMiddleware(httpMetrics))

	h := handler.New(appConfig, logger, ctrl, sessions, db, metricsRegistry, jobStatusManager)

	// use ginSwagger middleware to serve the API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loadAPIRoutes(r, h)

	return r
}
