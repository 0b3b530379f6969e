package songswap

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

func withAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("InitiatedUser").
		Preload("MatchedUser").
		Preload("InitiatedTrack.Artist").
		Preload("MatchedTrack.Artist")
}

func (s *Store) Create(tx *gorm.DB, swap *model.SongSwap) (*model.SongSwap, error) {
	return swap, tx.Create(swap).Error
}

func (s *Store) GetByID(tx *gorm.DB, id int64) (*model.SongSwap, error) {
	var swap model.SongSwap
	err := withAssociations(tx).Where("id = ?", id).First(&swap).Error
	if err != nil {
		return nil, err
	}
	return &swap, nil
}

func (s *Store) List(tx *gorm.DB, userID int64, swapID *int64, limit int) ([]model.SongSwap, error) {
	q := withAssociations(tx).
		Where("initiated_user_id = ? OR matched_user_id = ?", userID, userID)
	if swapID != nil {
		q = q.Where("id = ?", *swapID)
	}

	var swaps []model.SongSwap
	err := q.Order("swap_initiated_timestamp DESC").Limit(limit).Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

func (s *Store) SetInitiatedTrack(tx *gorm.DB, swapID, trackID int64, at time.Time) error {
	return s.update(tx, swapID, map[string]interface{}{
		"initiated_track_id":        trackID,
		"initiated_track_timestamp": at,
	})
}

func (s *Store) SetMatchedTrack(tx *gorm.DB, swapID, trackID int64, at time.Time) error {
	return s.update(tx, swapID, map[string]interface{}{
		"matched_track_id":        trackID,
		"matched_track_timestamp": at,
	})
}

func (s *Store) SetInitiatedReaction(tx *gorm.DB, swapID, reaction int64, at time.Time) error {
	return s.update(tx, swapID, map[string]interface{}{
		"initiated_reaction":           reaction,
		"initiated_reaction_timestamp": at,
	})
}

func (s *Store) SetMatchedReaction(tx *gorm.DB, swapID, reaction int64, at time.Time) error {
	return s.update(tx, swapID, map[string]interface{}{
		"matched_reaction":           reaction,
		"matched_reaction_timestamp": at,
	})
}

func (s *Store) update(tx *gorm.DB, swapID int64, fields map[string]interface{}) error {
	res := tx.Model(&model.SongSwap{}).Where("id = ?", swapID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
