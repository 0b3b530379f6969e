package artist

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) GetByID(tx *gorm.DB, id int64) (*model.Artist, error) {
	var artist model.Artist
	err := tx.Where("id = ?", id).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *Store) GetByName(tx *gorm.DB, name string) (*model.Artist, error) {
	var artist model.Artist
	err := tx.Where("artist_name = ?", name).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *Store) GetOrCreate(tx *gorm.DB, name, mbid string) (*model.Artist, error) {
	var artist model.Artist
	err := tx.Where("artist_name = ?", name).
		Attrs(model.Artist{ArtistName: name, LastfmMbid: mbid}).
		FirstOrCreate(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}
