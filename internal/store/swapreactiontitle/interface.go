package swapreactiontitle

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, title *model.SwapReactionTitle) (*model.SwapReactionTitle, error)
	RandomForReaction(tx *gorm.DB, reaction int64) (*model.SwapReactionTitle, error)
}
