package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/broadcastr/broadcastr-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Lastfm      LastfmConfig
	// Cron expression for the periodic listening-data refresh, e.g. "@every 6h".
	RefreshPeriod string
	// Optional uptime monitor pinged after each successful refresh run.
	UptimeWebhookURL string
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

type LastfmConfig struct {
	APIKey  string
	BaseURL string
	// Requests per second allowed against the Last.fm API.
	RateLimit float64
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           envVarWithDefault("API_PORT", "8000"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Lastfm: LastfmConfig{
			APIKey:    os.Getenv("LAST_FM_API_KEY"),
			BaseURL:   envVarWithDefault("LAST_FM_API_URL", "https://ws.audioscrobbler.com/2.0"),
			RateLimit: envVarAsFloat("LAST_FM_RATE_LIMIT", 20),
		},
		RefreshPeriod:    envVarWithDefault("REFRESH_PERIOD", "@every 6h"),
		UptimeWebhookURL: os.Getenv("UPTIME_WEBHOOK_URL"),
	}
}

func envVarWithDefault(envName, fallback string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return fallback
}

func envVarAsFloat(envName string, fallback float64) float64 {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return fallback
	}

	return value
}
