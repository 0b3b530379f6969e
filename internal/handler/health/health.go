package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/monitoring"
	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

type HealthHandler struct {
	config           *config.AppConfig
	logger           *logger.Logger
	db               *gorm.DB
	httpClient       *http.Client
	jobStatusManager *monitoring.JobStatusManager
}

func New(config *config.AppConfig, logger *logger.Logger, db *gorm.DB, jobStatusManager *monitoring.JobStatusManager) IHealthHandler {
	return &HealthHandler{
		config:           config,
		logger:           logger,
		db:               db,
		httpClient:       &http.Client{Timeout: 5 * time.Second},
		jobStatusManager: jobStatusManager,
	}
}

// Basic handles the basic health check endpoint (/healthz)
// @Summary Basic health check
// @Tags health
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, BasicHealthResponse{Message: "ok"})
}

// Database verifies database connectivity (/healthz/db)
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} CheckResponse
// @Failure 503 {object} CheckResponse
// @Router /healthz/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	start := time.Now()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	latency := time.Since(start).Milliseconds()
	if err != nil {
		h.logger.Error("[Database][Ping]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, CheckResponse{
			Status:    "unhealthy",
			LatencyMs: latency,
			Error:     err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, CheckResponse{Status: "ok", LatencyMs: latency})
}

// External verifies the Last.fm API is reachable (/healthz/external)
// @Summary External dependency health check
// @Tags health
// @Produce json
// @Success 200 {object} CheckResponse
// @Failure 503 {object} CheckResponse
// @Router /healthz/external [get]
func (h *HealthHandler) External(c *gin.Context) {
	start := time.Now()

	resp, err := h.httpClient.Head(h.config.Lastfm.BaseURL)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		h.logger.Error("[External][Head]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, CheckResponse{
			Status:    "unhealthy",
			LatencyMs: latency,
			Error:     err.Error(),
		})
		return
	}
	resp.Body.Close()

	c.JSON(http.StatusOK, CheckResponse{Status: "ok", LatencyMs: latency})
}

// Jobs reports background job health (/healthz/jobs)
// @Summary Background job status
// @Tags health
// @Produce json
// @Success 200 {object} JobsResponse
// @Router /healthz/jobs [get]
func (h *HealthHandler) Jobs(c *gin.Context) {
	if h.jobStatusManager == nil {
		c.JSON(http.StatusOK, JobsResponse{Jobs: map[string]monitoring.JobStatus{}})
		return
	}
	c.JSON(http.StatusOK, JobsResponse{Jobs: h.jobStatusManager.Snapshot()})
}
