package toplistening

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type ListenerRow struct {
	ProfileName string
	Playcount   int64
}

type IStore interface {
	ReplaceTopArtists(tx *gorm.DB, userID int64, period string, rows []model.TopArtist) error
	ReplaceTopTracks(tx *gorm.DB, userID int64, period string, rows []model.TopTrack) error
	TopArtists(tx *gorm.DB, userID int64, period string, limit int) ([]model.TopArtist, error)
	TopTracks(tx *gorm.DB, userID int64, period string, limit int) ([]model.TopTrack, error)
	ArtistPlaycount(tx *gorm.DB, userID, artistID int64, period string) (int64, error)
	TopListeners(tx *gorm.DB, artistID int64, period string, limit int) ([]ListenerRow, error)
	LastRefreshed(tx *gorm.DB, userID int64) (*time.Time, error)
}
