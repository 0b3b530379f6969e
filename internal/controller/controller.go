package controller

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/lastfm"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

type Controller struct {
	db     *gorm.DB
	store  *store.Store
	lastfm lastfm.IClient
	logger *logger.Logger
	config *config.AppConfig
}

func New(
	db *gorm.DB,
	store *store.Store,
	lastfm lastfm.IClient,
	logger *logger.Logger,
	config *config.AppConfig,
) IController {
	return &Controller{
		db:     db,
		store:  store,
		lastfm: lastfm,
		logger: logger,
		config: config,
	}
}
