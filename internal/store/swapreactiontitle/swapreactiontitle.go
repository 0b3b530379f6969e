package swapreactiontitle

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, title *model.SwapReactionTitle) (*model.SwapReactionTitle, error) {
	return title, tx.Create(title).Error
}

func (s *Store) RandomForReaction(tx *gorm.DB, reaction int64) (*model.SwapReactionTitle, error) {
	var title model.SwapReactionTitle
	err := tx.Where("reaction = ?", reaction).
		Order("RANDOM()").
		First(&title).Error
	if err != nil {
		return nil, err
	}
	return &title, nil
}
