package controller

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/store/broadcast"
)

func (c *Controller) CreateBroadcast(userID int64, title, body string, relatedType model.RelatedType, relatedID int64) (*model.Broadcast, error) {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		return nil, ErrNotFound
	}

	return c.store.Broadcast.Create(c.db, &model.Broadcast{
		UserID:        userID,
		Title:         title,
		Body:          body,
		RelatedTypeID: relatedType,
		RelatedID:     relatedID,
		Timestamp:     time.Now(),
	})
}

func (c *Controller) DeleteBroadcast(userID, broadcastID int64) error {
	err := c.store.Broadcast.SoftDelete(c.db, broadcastID, userID)
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}

func (c *Controller) GetBroadcasts(profileName string) ([]broadcast.FeedRow, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.Broadcast.ListForUser(c.db, user.ID, consts.DefaultListLimit)
}

func (c *Controller) GetFeed(userID int64) ([]broadcast.FeedRow, error) {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		return nil, ErrNotFound
	}
	return c.store.Broadcast.Feed(c.db, userID, consts.DefaultListLimit)
}

func (c *Controller) GetTopBroadcastedTracks(profileName string) ([]broadcast.TopTrackRow, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.Broadcast.TopBroadcastedTracks(c.db, user.ID, consts.DefaultListLimit)
}

func (c *Controller) CreateLike(userID int64, typeName string, relatedID int64) error {
	relatedType := model.ParseRelatedType(typeName)
	if relatedType == 0 {
		return ErrNotFound
	}

	if _, err := c.store.Like.Get(c.db, userID, relatedType, relatedID); err == nil {
		return ErrAlreadyExists
	}

	return store.DoInTx(c.db, func(tx *gorm.DB) error {
		_, err := c.store.Like.Create(tx, &model.Like{
			UserID:        userID,
			RelatedTypeID: relatedType,
			RelatedID:     relatedID,
			Timestamp:     time.Now(),
		})
		if err != nil {
			return err
		}

		// Liking someone's broadcast tips its author a swag point.
		if relatedType == model.RelatedTypeBroadcast {
			b, err := c.store.Broadcast.GetByID(tx, relatedID)
			if err != nil {
				return err
			}
			if b.UserID != userID {
				if _, err := c.store.User.AddSwag(tx, b.UserID, consts.SwagLikedBroadcast); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (c *Controller) DeleteLike(userID int64, typeName string, relatedID int64) error {
	relatedType := model.ParseRelatedType(typeName)
	if relatedType == 0 {
		return ErrNotFound
	}

	err := c.store.Like.Delete(c.db, userID, relatedType, relatedID)
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}
