package indexer

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/monitoring"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

const jobName = "listening_refresh"

type indexer struct {
	db         *gorm.DB
	store      *store.Store
	controller controller.IController
	logger     *logger.Logger
	jobStatus  *monitoring.JobStatusManager
}

func New(db *gorm.DB, store *store.Store, ctrl controller.IController,
	logger *logger.Logger, jobStatus *monitoring.JobStatusManager) IIndexer {
	return &indexer{
		db:         db,
		store:      store,
		controller: ctrl,
		logger:     logger,
		jobStatus:  jobStatus,
	}
}

func (i *indexer) RefreshStaleListeningData() error {
	started := time.Now()

	activeSince := started.AddDate(0, 0, -consts.MatchmakingWindowDays)
	users, err := i.store.User.ListActiveSince(i.db, activeSince)
	if err != nil {
		i.jobStatus.RecordFailure(jobName, started, err)
		return err
	}

	staleBefore := started.AddDate(0, 0, -consts.RefreshAfterDays)
	refreshed := 0
	for _, user := range users {
		if user.ID == consts.SystemAccountID {
			continue
		}

		lastRefreshed, err := i.store.TopListening.LastRefreshed(i.db, user.ID)
		if err != nil {
			i.jobStatus.RecordFailure(jobName, started, err)
			return err
		}
		if lastRefreshed != nil && lastRefreshed.After(staleBefore) {
			continue
		}

		if err := i.controller.RefreshListeningData(user.ID); err != nil {
			// One bad profile should not starve the rest of the run.
			i.logger.Error("[RefreshStaleListeningData][RefreshListeningData]", map[string]string{
				"profile": user.LastfmProfileName,
				"error":   err.Error(),
			})
			continue
		}
		refreshed++
	}

	i.logger.Info("listening data refresh complete", map[string]string{
		"candidates": strconv.Itoa(len(users)),
		"refreshed":  strconv.Itoa(refreshed),
	})
	i.jobStatus.RecordSuccess(jobName, started)
	return nil
}
