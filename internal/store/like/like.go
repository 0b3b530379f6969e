package like

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, like *model.Like) (*model.Like, error) {
	return like, tx.Create(like).Error
}

func (s *Store) Get(tx *gorm.DB, userID int64, relatedTypeID model.RelatedType, relatedID int64) (*model.Like, error) {
	var like model.Like
	err := tx.Where("user_id = ? AND related_type_id = ? AND related_id = ?",
		userID, relatedTypeID, relatedID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *Store) Delete(tx *gorm.DB, userID int64, relatedTypeID model.RelatedType, relatedID int64) error {
	res := tx.Where("user_id = ? AND related_type_id = ? AND related_id = ?",
		userID, relatedTypeID, relatedID).
		Delete(&model.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) Count(tx *gorm.DB, relatedTypeID model.RelatedType, relatedID int64) (int64, error) {
	var count int64
	err := tx.Model(&model.Like{}).
		Where("related_type_id = ? AND related_id = ?", relatedTypeID, relatedID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
