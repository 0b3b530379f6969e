package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store"
	"github.com/broadcastr/broadcastr-backend/internal/store/user"
	"github.com/broadcastr/broadcastr-backend/internal/types/environments"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

// fakeUserStore stubs Search. The embedded interface panics on
// anything else, which is what we want.
type fakeUserStore struct {
	user.IStore

	searchFn func(term string, partial bool, limit int) ([]model.User, error)
}

func (f *fakeUserStore) Search(_ *gorm.DB, term string, partial bool, limit int) ([]model.User, error) {
	return f.searchFn(term, partial, limit)
}

func newProfileController(users user.IStore) IController {
	return New(nil, &store.Store{User: users}, nil, logger.New(environments.Test), nil)
}

func TestGetProfiles_EmptyPartialIsNotAnError(t *testing.T) {
	c := newProfileController(&fakeUserStore{
		searchFn: func(term string, partial bool, limit int) ([]model.User, error) {
			assert.Equal(t, "zz", term)
			assert.True(t, partial)
			return nil, nil
		},
	})

	users, err := c.GetProfiles("zz", true)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetProfiles_ExactMissIsNotFound(t *testing.T) {
	c := newProfileController(&fakeUserStore{
		searchFn: func(term string, partial bool, limit int) ([]model.User, error) {
			assert.False(t, partial)
			assert.Equal(t, 1, limit)
			return nil, nil
		},
	})

	_, err := c.GetProfiles("nobody", false)
	assert.ErrorIs(t, err, ErrNotFound)
}
