package artist

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type IStore interface {
	GetByID(tx *gorm.DB, id int64) (*model.Artist, error)
	GetByName(tx *gorm.DB, name string) (*model.Artist, error)
	GetOrCreate(tx *gorm.DB, name, mbid string) (*model.Artist, error)
}
