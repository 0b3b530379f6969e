package songswap

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, swap *model.SongSwap) (*model.SongSwap, error)
	GetByID(tx *gorm.DB, id int64) (*model.SongSwap, error)
	List(tx *gorm.DB, userID int64, swapID *int64, limit int) ([]model.SongSwap, error)
	SetInitiatedTrack(tx *gorm.DB, swapID, trackID int64, at time.Time) error
	SetMatchedTrack(tx *gorm.DB, swapID, trackID int64, at time.Time) error
	SetInitiatedReaction(tx *gorm.DB, swapID, reaction int64, at time.Time) error
	SetMatchedReaction(tx *gorm.DB, swapID, reaction int64, at time.Time) error
}
