package controller

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/store/toplistening"
)

func (c *Controller) RefreshListeningData(userID int64) error {
	user, err := c.store.User.GetByID(c.db, userID)
	if err != nil {
		return ErrNotFound
	}

	for _, period := range consts.RefreshPeriods {
		if err := c.refreshPeriod(user, period); err != nil {
			c.logger.Error("[RefreshListeningData][refreshPeriod]", map[string]string{
				"profile": user.LastfmProfileName,
				"period":  period,
				"error":   err.Error(),
			})
			return err
		}
	}
	return nil
}

func (c *Controller) refreshPeriod(user *model.User, period string) error {
	artists, err := c.lastfm.GetTopArtists(user.LastfmProfileName, period, consts.DefaultListLimit)
	if err != nil {
		return err
	}
	tracks, err := c.lastfm.GetTopTracks(user.LastfmProfileName, period, consts.DefaultListLimit)
	if err != nil {
		return err
	}

	now := time.Now()
	return store.DoInTx(c.db, func(tx *gorm.DB) error {
		artistRows := make([]model.TopArtist, 0, len(artists))
		for _, entry := range artists {
			a, err := c.store.Artist.GetOrCreate(tx, entry.Name, entry.Mbid)
			if err != nil {
				return err
			}
			artistRows = append(artistRows, model.TopArtist{
				UserID:      user.ID,
				ArtistID:    a.ID,
				Period:      period,
				Playcount:   entry.Playcount,
				LastUpdated: now,
			})
		}
		if err := c.store.TopListening.ReplaceTopArtists(tx, user.ID, period, artistRows); err != nil {
			return err
		}

		trackRows := make([]model.TopTrack, 0, len(tracks))
		for _, entry := range tracks {
			a, err := c.store.Artist.GetOrCreate(tx, entry.Artist, "")
			if err != nil {
				return err
			}
			t, err := c.store.Track.GetOrCreate(tx, entry.Name, a.ID, entry.Mbid, entry.URL)
			if err != nil {
				return err
			}
			trackRows = append(trackRows, model.TopTrack{
				UserID:      user.ID,
				TrackID:     t.ID,
				Period:      period,
				Playcount:   entry.Playcount,
				LastUpdated: now,
			})
		}
		return c.store.TopListening.ReplaceTopTracks(tx, user.ID, period, trackRows)
	})
}

func (c *Controller) GetTopArtists(profileName, period string) ([]model.TopArtist, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.TopListening.TopArtists(c.db, user.ID, period, consts.DefaultListLimit)
}

func (c *Controller) GetTopTracks(profileName, period string) ([]model.TopTrack, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.TopListening.TopTracks(c.db, user.ID, period, consts.DefaultListLimit)
}

func (c *Controller) GetArtist(artistID int64) (*model.Artist, error) {
	artist, err := c.store.Artist.GetByID(c.db, artistID)
	if err != nil {
		return nil, ErrNotFound
	}
	return artist, nil
}

func (c *Controller) GetArtistListens(profileName, artistName, period string) (int64, error) {
	user, err := c.store.User.GetByProfileName(c.db, profileName)
	if err != nil {
		return 0, ErrNotFound
	}
	artist, err := c.store.Artist.GetByName(c.db, artistName)
	if err != nil {
		return 0, ErrNotFound
	}
	return c.store.TopListening.ArtistPlaycount(c.db, user.ID, artist.ID, period)
}

func (c *Controller) GetTopListeners(artistName, period string) ([]toplistening.ListenerRow, error) {
	artist, err := c.store.Artist.GetByName(c.db, artistName)
	if err != nil {
		return nil, ErrNotFound
	}
	return c.store.TopListening.TopListeners(c.db, artist.ID, period, consts.DefaultListLimit)
}
