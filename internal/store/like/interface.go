package like

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, like *model.Like) (*model.Like, error)
	Get(tx *gorm.DB, userID int64, relatedTypeID model.RelatedType, relatedID int64) (*model.Like, error)
	Delete(tx *gorm.DB, userID int64, relatedTypeID model.RelatedType, relatedID int64) error
	Count(tx *gorm.DB, relatedTypeID model.RelatedType, relatedID int64) (int64, error)
}
