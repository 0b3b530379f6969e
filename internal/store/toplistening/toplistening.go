package toplistening

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) ReplaceTopArtists(tx *gorm.DB, userID int64, period string, rows []model.TopArtist) error {
	err := tx.Where("user_id = ? AND period = ?", userID, period).
		Delete(&model.TopArtist{}).Error
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (s *Store) ReplaceTopTracks(tx *gorm.DB, userID int64, period string, rows []model.TopTrack) error {
	err := tx.Where("user_id = ? AND period = ?", userID, period).
		Delete(&model.TopTrack{}).Error
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (s *Store) TopArtists(tx *gorm.DB, userID int64, period string, limit int) ([]model.TopArtist, error) {
	var rows []model.TopArtist
	err := tx.Preload("Artist").
		Where("user_id = ? AND period = ?", userID, period).
		Order("playcount DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) TopTracks(tx *gorm.DB, userID int64, period string, limit int) ([]model.TopTrack, error) {
	var rows []model.TopTrack
	err := tx.Preload("Track.Artist").
		Where("user_id = ? AND period = ?", userID, period).
		Order("playcount DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ArtistPlaycount(tx *gorm.DB, userID, artistID int64, period string) (int64, error) {
	var row model.TopArtist
	err := tx.Where("user_id = ? AND artist_id = ? AND period = ?", userID, artistID, period).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return row.Playcount, nil
}

func (s *Store) TopListeners(tx *gorm.DB, artistID int64, period string, limit int) ([]ListenerRow, error) {
	var rows []ListenerRow
	err := tx.Raw(`
SELECT u.lastfm_profile_name AS profile_name, ta.playcount
  FROM top_artists ta
  JOIN users u ON u.id = ta.user_id
 WHERE ta.artist_id = ? AND ta.period = ?
 ORDER BY ta.playcount DESC
 LIMIT ?`, artistID, period, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) LastRefreshed(tx *gorm.DB, userID int64) (*time.Time, error) {
	var row model.TopArtist
	err := tx.Where("user_id = ?", userID).
		Order("last_updated DESC").
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row.LastUpdated, nil
}
