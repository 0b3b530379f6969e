package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, user *model.User) (*model.User, error)
	GetByID(tx *gorm.DB, id int64) (*model.User, error)
	GetByProfileName(tx *gorm.DB, profileName string) (*model.User, error)
	GetByEmail(tx *gorm.DB, email string) (*model.User, error)
	Search(tx *gorm.DB, term string, partial bool, limit int) ([]model.User, error)
	UpdateLastLogin(tx *gorm.DB, userID int64, at time.Time) error
	UpdatePassword(tx *gorm.DB, userID int64, passwordHash string) error
	AddSwag(tx *gorm.DB, userID int64, delta int64) (int64, error)
	FindMatchCandidate(tx *gorm.DB, excludeIDs []int64, activeSince time.Time) (*model.User, error)
	ListActiveSince(tx *gorm.DB, since time.Time) ([]model.User, error)
}
