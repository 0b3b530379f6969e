package following

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Row struct {
	ProfileName    string
	FollowingSince time.Time
}

type IStore interface {
	Create(tx *gorm.DB, following *model.Following) (*model.Following, error)
	Get(tx *gorm.DB, followerID, followeeID int64) (*model.Following, error)
	Delete(tx *gorm.DB, followerID, followeeID int64) error
	Followers(tx *gorm.DB, userID int64, limit int) ([]Row, error)
	Following(tx *gorm.DB, userID int64, limit int) ([]Row, error)
}
