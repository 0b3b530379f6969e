package track

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) GetByID(tx *gorm.DB, id int64) (*model.Track, error) {
	var track model.Track
	err := tx.Preload("Artist").Where("id = ?", id).First(&track).Error
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *Store) GetOrCreate(tx *gorm.DB, name string, artistID int64, mbid, lastfmURL string) (*model.Track, error) {
	var track model.Track
	err := tx.Where("track_name = ? AND artist_id = ?", name, artistID).
		Attrs(model.Track{
			TrackName:      name,
			ArtistID:       artistID,
			Mbid:           mbid,
			LastfmTrackURL: lastfmURL,
		}).
		FirstOrCreate(&track).Error
	if err != nil {
		return nil, err
	}
	return &track, nil
}
