package webhook

import (
	"context"
	"net/http"
	"time"

	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

// Client pings an external uptime monitor after background jobs finish.
type Client struct {
	httpClient *http.Client
	logger     *logger.Logger
}

func New(logger *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// CallUptimeWebhook makes a simple GET request to the webhook URL.
// A missing URL or a failed call is logged and otherwise ignored.
func (c *Client) CallUptimeWebhook(ctx context.Context, webhookURL string) {
	if webhookURL == "" {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, webhookURL, nil)
	if err != nil {
		c.logger.Error("failed to create webhook request", map[string]string{
			"url":   webhookURL,
			"error": err.Error(),
		})
		return
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to call uptime webhook", map[string]string{
			"url":   webhookURL,
			"error": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	c.logger.Info("uptime webhook called", map[string]string{
		"url":         webhookURL,
		"status_code": resp.Status,
	})
}
