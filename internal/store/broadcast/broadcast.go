package broadcast

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, broadcast *model.Broadcast) (*model.Broadcast, error) {
	return broadcast, tx.Create(broadcast).Error
}

func (s *Store) GetByID(tx *gorm.DB, id int64) (*model.Broadcast, error) {
	var broadcast model.Broadcast
	err := tx.Where("id = ? AND deleted = false", id).First(&broadcast).Error
	if err != nil {
		return nil, err
	}
	return &broadcast, nil
}

func (s *Store) SoftDelete(tx *gorm.DB, id, userID int64) error {
	res := tx.Model(&model.Broadcast{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

const feedSelect = `
SELECT b.id,
       u.lastfm_profile_name AS profile_name,
       b.title,
       b.body,
       b.timestamp,
       b.related_type_id,
       b.related_id,
       COALESCE(t.track_name, a.artist_name, ru.lastfm_profile_name, '') AS related_to,
       (SELECT COUNT(*) FROM likes l
         WHERE l.related_type_id = ? AND l.related_id = b.id) AS likes
  FROM broadcasts b
  JOIN users u ON u.id = b.user_id
  LEFT JOIN tracks t ON b.related_type_id IN ? AND t.id = b.related_id
  LEFT JOIN artists a ON b.related_type_id IN ? AND a.id = b.related_id
  LEFT JOIN users ru ON b.related_type_id IN ? AND ru.id = b.related_id
 WHERE b.deleted = false`

var (
	trackRelatedTypes  = []model.RelatedType{model.RelatedTypeTrack, model.RelatedTypeTopTrack}
	artistRelatedTypes = []model.RelatedType{model.RelatedTypeArtist, model.RelatedTypeTopArtist}
	userRelatedTypes   = []model.RelatedType{model.RelatedTypeUser, model.RelatedTypeFollowing}
)

func (s *Store) ListForUser(tx *gorm.DB, userID int64, limit int) ([]FeedRow, error) {
	var rows []FeedRow
	err := tx.Raw(feedSelect+`
   AND b.user_id = ?
 ORDER BY b.timestamp DESC
 LIMIT ?`,
		model.RelatedTypeBroadcast,
		trackRelatedTypes, artistRelatedTypes, userRelatedTypes,
		userID, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) Feed(tx *gorm.DB, userID int64, limit int) ([]FeedRow, error) {
	var rows []FeedRow
	err := tx.Raw(feedSelect+`
   AND (b.user_id = ? OR b.user_id IN
        (SELECT followee_id FROM followings WHERE follower_id = ?))
 ORDER BY b.timestamp DESC
 LIMIT ?`,
		model.RelatedTypeBroadcast,
		trackRelatedTypes, artistRelatedTypes, userRelatedTypes,
		userID, userID, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) TopBroadcastedTracks(tx *gorm.DB, userID int64, limit int) ([]TopTrackRow, error) {
	var rows []TopTrackRow
	err := tx.Raw(`
SELECT b.id AS broadcast_id,
       t.id AS track_id,
       t.track_name,
       a.artist_name,
       t.lastfm_track_url,
       (SELECT COUNT(*) FROM likes l
         WHERE l.related_type_id = ? AND l.related_id = b.id) AS likes
  FROM broadcasts b
  JOIN tracks t ON t.id = b.related_id
  JOIN artists a ON a.id = t.artist_id
 WHERE b.user_id = ? AND b.related_type_id = ? AND b.deleted = false
 ORDER BY likes DESC, b.timestamp DESC
 LIMIT ?`,
		model.RelatedTypeBroadcast, userID, model.RelatedTypeTrack, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
