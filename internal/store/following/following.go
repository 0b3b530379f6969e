package following

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, following *model.Following) (*model.Following, error) {
	return following, tx.Create(following).Error
}

func (s *Store) Get(tx *gorm.DB, followerID, followeeID int64) (*model.Following, error) {
	var following model.Following
	err := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&following).Error
	if err != nil {
		return nil, err
	}
	return &following, nil
}

func (s *Store) Delete(tx *gorm.DB, followerID, followeeID int64) error {
	res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Following{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) Followers(tx *gorm.DB, userID int64, limit int) ([]Row, error) {
	var rows []Row
	err := tx.Raw(`
SELECT u.lastfm_profile_name AS profile_name, f.following_since
  FROM followings f
  JOIN users u ON u.id = f.follower_id
 WHERE f.followee_id = ?
 ORDER BY f.following_since DESC
 LIMIT ?`, userID, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) Following(tx *gorm.DB, userID int64, limit int) ([]Row, error) {
	var rows []Row
	err := tx.Raw(`
SELECT u.lastfm_profile_name AS profile_name, f.following_since
  FROM followings f
  JOIN users u ON u.id = f.followee_id
 WHERE f.follower_id = ?
 ORDER BY f.following_since DESC
 LIMIT ?`, userID, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
