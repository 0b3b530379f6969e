package user

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, user *model.User) (*model.User, error) {
	return user, tx.Create(user).Error
}

func (s *Store) GetByID(tx *gorm.DB, id int64) (*model.User, error) {
	var user model.User
	err := tx.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetByProfileName(tx *gorm.DB, profileName string) (*model.User, error) {
	var user model.User
	err := tx.Where("lastfm_profile_name = ?", profileName).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetByEmail(tx *gorm.DB, email string) (*model.User, error) {
	var user model.User
	err := tx.Where("email_address = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) Search(tx *gorm.DB, term string, partial bool, limit int) ([]model.User, error) {
	var users []model.User
	q := tx.Model(&model.User{})
	if partial {
		q = q.Where("lastfm_profile_name ILIKE ?", "%"+term+"%")
	} else {
		q = q.Where("lastfm_profile_name = ?", term)
	}
	err := q.Order("lastfm_profile_name ASC").Limit(limit).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) UpdateLastLogin(tx *gorm.DB, userID int64, at time.Time) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("last_login", at).Error
}

func (s *Store) UpdatePassword(tx *gorm.DB, userID int64, passwordHash string) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("password_hash", passwordHash).Error
}

func (s *Store) AddSwag(tx *gorm.DB, userID int64, delta int64) (int64, error) {
	err := tx.Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("swag", gorm.Expr("swag + ?", delta)).Error
	if err != nil {
		return 0, err
	}

	var user model.User
	err = tx.Select("swag").Where("id = ?", userID).First(&user).Error
	if err != nil {
		return 0, err
	}
	return user.Swag, nil
}

func (s *Store) ListActiveSince(tx *gorm.DB, since time.Time) ([]model.User, error) {
	var users []model.User
	err := tx.Where("last_login > ?", since).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) FindMatchCandidate(tx *gorm.DB, excludeIDs []int64, activeSince time.Time) (*model.User, error) {
	var user model.User
	err := tx.Where("id NOT IN ?", excludeIDs).
		Where("last_login > ?", activeSince).
		Order("RANDOM()").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
