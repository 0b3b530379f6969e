package controller

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/swapstate"
)

func (c *Controller) InitiateSongSwap(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error) {
	user, err := c.store.User.GetByID(c.db, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	var match *model.User
	if matchedUserID != nil {
		if *matchedUserID == userID || *matchedUserID == consts.SystemAccountID {
			return nil, ErrNoMatchAvailable
		}
		match, err = c.store.User.GetByID(c.db, *matchedUserID)
		if err != nil {
			return nil, ErrNoMatchAvailable
		}
	} else {
		activeSince := time.Now().AddDate(0, 0, -consts.MatchmakingWindowDays)
		match, err = c.store.User.FindMatchCandidate(c.db,
			[]int64{userID, consts.SystemAccountID}, activeSince)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrNoMatchAvailable
			}
			return nil, err
		}
	}

	now := time.Now()
	swap := &model.SongSwap{
		InitiatedUserID:        userID,
		MatchedUserID:          match.ID,
		SwapInitiatedTimestamp: now,
	}
	if trackID != nil {
		track, err := c.store.Track.GetByID(c.db, *trackID)
		if err != nil {
			return nil, ErrNotFound
		}
		swap.InitiatedTrackID = &track.ID
		swap.InitiatedTrackTimestamp = &now
	}

	err = store.DoInTx(c.db, func(tx *gorm.DB) error {
		if _, err := c.store.SongSwap.Create(tx, swap); err != nil {
			return err
		}

		_, err := c.store.Broadcast.Create(tx, &model.Broadcast{
			UserID:        consts.SystemAccountID,
			Title:         "New Song Swap",
			Body:          fmt.Sprintf("%s has initiated a Song Swap with %s!", user.LastfmProfileName, match.LastfmProfileName),
			RelatedTypeID: model.RelatedTypeSongSwap,
			RelatedID:     swap.ID,
			Timestamp:     now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return c.store.SongSwap.GetByID(c.db, swap.ID)
}

func (c *Controller) AddSwapTrack(swapID, userID, trackID int64) (*model.SongSwap, error) {
	swap, err := c.store.SongSwap.GetByID(c.db, swapID)
	if err != nil {
		return nil, ErrNotFound
	}

	role, err := swapstate.RoleFor(swap, userID)
	if err != nil {
		return nil, ErrNotAllowed
	}

	if _, err := c.store.Track.GetByID(c.db, trackID); err != nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	switch role {
	case swapstate.RoleInitiated:
		if swap.InitiatedTrackID != nil {
			return nil, ErrTrackAlreadyAdded
		}
		err = c.store.SongSwap.SetInitiatedTrack(c.db, swapID, trackID, now)
	case swapstate.RoleMatched:
		if swap.MatchedTrackID != nil {
			return nil, ErrTrackAlreadyAdded
		}
		err = c.store.SongSwap.SetMatchedTrack(c.db, swapID, trackID, now)
	}
	if err != nil {
		return nil, err
	}

	return c.store.SongSwap.GetByID(c.db, swapID)
}

func (c *Controller) AddSwapReaction(swapID, userID, reaction int64) (*model.SongSwap, error) {
	if reaction < consts.SwapReactionMin || reaction > consts.SwapReactionMax {
		return nil, ErrInvalidReaction
	}

	swap, err := c.store.SongSwap.GetByID(c.db, swapID)
	if err != nil {
		return nil, ErrNotFound
	}

	role, err := swapstate.RoleFor(swap, userID)
	if err != nil {
		return nil, ErrNotAllowed
	}

	// A reaction rates the track the partner sent, so that track has to
	// exist before the reaction may be written.
	var ratedTrackID *int64
	var partnerID int64
	switch role {
	case swapstate.RoleInitiated:
		if swap.InitiatedReaction != nil {
			return nil, ErrAlreadyExists
		}
		ratedTrackID = swap.MatchedTrackID
		partnerID = swap.MatchedUserID
	case swapstate.RoleMatched:
		if swap.MatchedReaction != nil {
			return nil, ErrAlreadyExists
		}
		ratedTrackID = swap.InitiatedTrackID
		partnerID = swap.InitiatedUserID
	}
	if ratedTrackID == nil {
		return nil, ErrReactionTooEarly
	}

	ratedTrack, err := c.store.Track.GetByID(c.db, *ratedTrackID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = store.DoInTx(c.db, func(tx *gorm.DB) error {
		if role == swapstate.RoleInitiated {
			err = c.store.SongSwap.SetInitiatedReaction(tx, swapID, reaction, now)
		} else {
			err = c.store.SongSwap.SetMatchedReaction(tx, swapID, reaction, now)
		}
		if err != nil {
			return err
		}

		// The rating is the award: a 4/5 reaction hands the partner 4 swag.
		if _, err := c.store.User.AddSwag(tx, partnerID, reaction); err != nil {
			return err
		}

		title := "A song swap track has been rated!"
		if t, err := c.store.SwapReactionTitle.RandomForReaction(tx, reaction); err == nil {
			title = t.Title
		}

		_, err = c.store.Broadcast.Create(tx, &model.Broadcast{
			UserID:        consts.SystemAccountID,
			Title:         title,
			Body:          fmt.Sprintf("%s earned a %d/5 rating!", ratedTrack.TrackName, reaction),
			RelatedTypeID: model.RelatedTypeSongSwap,
			RelatedID:     swapID,
			Timestamp:     now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return c.store.SongSwap.GetByID(c.db, swapID)
}

func (c *Controller) ListSongSwaps(userID int64, swapID *int64) ([]model.SongSwap, error) {
	if _, err := c.store.User.GetByID(c.db, userID); err != nil {
		return nil, ErrNotFound
	}
	return c.store.SongSwap.List(c.db, userID, swapID, consts.DefaultListLimit)
}
