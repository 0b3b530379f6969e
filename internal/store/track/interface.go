package track

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type IStore interface {
	GetByID(tx *gorm.DB, id int64) (*model.Track, error)
	GetOrCreate(tx *gorm.DB, name string, artistID int64, mbid, lastfmURL string) (*model.Track, error)
}
