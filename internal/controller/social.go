package controller

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/store/directmessage"
	"github.com/broadcastr/broadcastr-backend/internal/store/following"
)

func (c *Controller) Follow(followerID int64, followeeProfile string) error {
	follower, err := c.store.User.GetByID(c.db, followerID)
	if err != nil {
		return ErrNotFound
	}
	followee, err := c.store.User.GetByProfileName(c.db, followeeProfile)
	if err != nil {
		return ErrNotFound
	}
	if follower.ID == followee.ID {
		return ErrNotAllowed
	}
	if _, err := c.store.Following.Get(c.db, follower.ID, followee.ID); err == nil {
		return ErrAlreadyExists
	}

	now := time.Now()
	return store.DoInTx(c.db, func(tx *gorm.DB) error {
		_, err := c.store.Following.Create(tx, &model.Following{
			FollowerID:     follower.ID,
			FolloweeID:     followee.ID,
			FollowingSince: now,
		})
		if err != nil {
			return err
		}

		_, err = c.store.Broadcast.Create(tx, &model.Broadcast{
			UserID:        follower.ID,
			Title:         "New follow",
			Body:          fmt.Sprintf("%s started following %s", follower.LastfmProfileName, followee.LastfmProfileName),
			RelatedTypeID: model.RelatedTypeFollowing,
			RelatedID:     followee.ID,
			Timestamp:     now,
		})
		return err
	})
}

func (c *Controller) Unfollow(followerID int64, followeeProfile string) error {
	followee, err := c.store.User.GetByProfileName(c.db, followeeProfile)
	if err != nil {
		return ErrNotFound
	}

	err = c.store.Following.Delete(c.db, followerID, followee.ID)
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}

func (c *Controller) GetFollowers(profileName string) ([]following.Row, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.Following.Followers(c.db, user.ID, consts.DefaultListLimit)
}

func (c *Controller) GetFollowing(profileName string) ([]following.Row, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.Following.Following(c.db, user.ID, consts.DefaultListLimit)
}

func (c *Controller) SendDirectMessage(senderID int64, recipientProfile, message string) (*model.DirectMessage, error) {
	if _, err := c.store.User.GetByID(c.db, senderID); err != nil {
		return nil, ErrNotFound
	}
	recipient, err := c.store.User.GetByProfileName(c.db, recipientProfile)
	if err != nil {
		return nil, ErrNotFound
	}
	if recipient.ID == senderID {
		return nil, ErrNotAllowed
	}

	return c.store.DirectMessage.Create(c.db, &model.DirectMessage{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		MessageBody: message,
		TimeSent:    time.Now(),
	})
}

func (c *Controller) GetConversations(userID int64) ([]directmessage.ConversationRow, error) {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		return nil, ErrNotFound
	}
	return c.store.DirectMessage.Conversations(c.db, userID, consts.DefaultListLimit)
}

func (c *Controller) GetDirectMessages(userID int64, conversantProfile string) ([]model.DirectMessage, error) {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		return nil, ErrNotFound
	}
	conversant, err := c.store.User.GetByProfileName(c.db, conversantProfile)
	if err != nil {
		return nil, ErrNotFound
	}

	messages, err := c.store.DirectMessage.Between(c.db, userID, conversant.ID, consts.DefaultListLimit)
	if err != nil {
		return nil, err
	}

	// Reading the thread clears the unread flags from this conversant.
	if err := c.store.DirectMessage.MarkRead(c.db, userID, conversant.ID); err != nil {
		c.logger.Error("[GetDirectMessages][MarkRead]", map[string]string{
			"error": err.Error(),
		})
	}
	return messages, nil
}

func (c *Controller) MarkMessagesRead(senderProfile, recipientProfile string) error {
	sender, err := c.store.User.GetByProfileName(c.db, senderProfile)
	if err != nil {
		return ErrNotFound
	}
	recipient, err := c.store.User.GetByProfileName(c.db, recipientProfile)
	if err != nil {
		return ErrNotFound
	}
	return c.store.DirectMessage.MarkRead(c.db, recipient.ID, sender.ID)
}
