package controller

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store"
)

type CreateProfileInput struct {
	Profile   string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (c *Controller) CreateProfile(input CreateProfileInput) (*model.User, error) {
	if _, err := c.store.User.GetByProfileName(c.db, input.Profile); err == nil {
		return nil, ErrAlreadyExists
	}
	if _, err := c.store.User.GetByEmail(c.db, input.Email); err == nil {
		return nil, ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		LastfmProfileName: input.Profile,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		EmailAddress:      input.Email,
		PasswordHash:      string(hash),
		Swag:              consts.SwagStartingBalance,
		CreatedAt:         time.Now(),
	}

	// Best effort: a missing Last.fm account should not block signup.
	info, err := c.lastfm.GetUserInfo(input.Profile)
	if err != nil {
		c.logger.Error("[CreateProfile][lastfm.GetUserInfo]", map[string]string{
			"profile": input.Profile,
			"error":   err.Error(),
		})
	} else {
		user.LastfmProfileURL = info.ProfileURL
		user.PfpSmall = info.PfpSmall
		user.PfpMedium = info.PfpMedium
		user.PfpLarge = info.PfpLarge
		user.PfpExtraLarge = info.PfpExtraLarge
		user.Bootstrapped = true
	}

	err = store.DoInTx(c.db, func(tx *gorm.DB) error {
		if _, err := c.store.User.Create(tx, user); err != nil {
			return err
		}

		_, err := c.store.Broadcast.Create(tx, &model.Broadcast{
			UserID:        consts.SystemAccountID,
			Title:         "Welcome to BroadCastr!",
			Body:          fmt.Sprintf("%s just joined. Give them a follow!", user.LastfmProfileName),
			RelatedTypeID: model.RelatedTypeUser,
			RelatedID:     user.ID,
			Timestamp:     time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Controller) Login(profileOrEmail, password string) (*model.User, bool, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileOrEmail)
	if err != nil {
		user, err = c.store.User.GetByEmail(c.db, profileOrEmail)
	}
	if err != nil {
		return nil, false, ErrInvalidCredentials
	}
	if user.ID == consts.SystemAccountID {
		return nil, false, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, false, ErrInvalidCredentials
	}

	now := time.Now()
	if err := c.store.User.UpdateLastLogin(c.db, user.ID, now); err != nil {
		return nil, false, err
	}
	user.LastLogin = &now

	refreshDue := true
	lastRefreshed, err := c.store.TopListening.LastRefreshed(c.db, user.ID)
	if err != nil {
		c.logger.Error("[Login][TopListening.LastRefreshed]", map[string]string{
			"profile": user.LastfmProfileName,
			"error":   err.Error(),
		})
	} else if lastRefreshed != nil {
		refreshDue = lastRefreshed.Before(now.AddDate(0, 0, -consts.RefreshAfterDays))
	}

	return user, refreshDue, nil
}

func (c *Controller) ResolveProfileID(profileName string) (int64, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return 0, ErrNotFound
	}
	return user.ID, nil
}

func (c *Controller) GetProfiles(term string, partial bool) ([]model.User, error) {
	limit := consts.ProfileSearchLimit
	if !partial {
		limit = 1
	}
	users, err := c.store.User.Search(c.db, term, partial, limit)
	if err != nil {
		return nil, err
	}
	// An exact lookup that misses is an error; a search that misses is
	// just an empty result set.
	if len(users) == 0 && !partial {
		return nil, ErrNotFound
	}
	return users, nil
}

func (c *Controller) ResetPassword(email, newPassword string) error {
	user, err := c.store.User.GetByEmail(c.db, email)
	if err != nil {
		return ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return c.store.User.UpdatePassword(c.db, user.ID, string(hash))
}

func (c *Controller) AddSwag(userID, amount int64) (int64, error) {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		return 0, ErrNotFound
	}
	return c.store.User.AddSwag(c.db, userID, amount)
}
