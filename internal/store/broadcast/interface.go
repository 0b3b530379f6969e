package broadcast

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

// FeedRow is a broadcast joined with its author and, where the related
// entity is a track, artist or user, that entity's display name.
type FeedRow struct {
	ID            int64
	ProfileName   string
	Title         string
	Body          string
	Timestamp     time.Time
	RelatedTypeID model.RelatedType
	RelatedID     int64
	RelatedTo     string
	Likes         int64
}

type TopTrackRow struct {
	BroadcastID    int64
	TrackID        int64
	TrackName      string
	ArtistName     string
	LastfmTrackURL string
	Likes          int64
}

type IStore interface {
	Create(tx *gorm.DB, broadcast *model.Broadcast) (*model.Broadcast, error)
	GetByID(tx *gorm.DB, id int64) (*model.Broadcast, error)
	SoftDelete(tx *gorm.DB, id, userID int64) error
	ListForUser(tx *gorm.DB, userID int64, limit int) ([]FeedRow, error)
	Feed(tx *gorm.DB, userID int64, limit int) ([]FeedRow, error)
	TopBroadcastedTracks(tx *gorm.DB, userID int64, limit int) ([]TopTrackRow, error)
}
