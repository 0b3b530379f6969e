package store

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/store/artist"
	"github.com/broadcastr/broadcastr-backend/internal/store/broadcast"
	"github.com/broadcastr/broadcastr-backend/internal/store/directmessage"
	"github.com/broadcastr/broadcastr-backend/internal/store/following"
	"github.com/broadcastr/broadcastr-backend/internal/store/like"
	"github.com/broadcastr/broadcastr-backend/internal/store/songswap"
	"github.com/broadcastr/broadcastr-backend/internal/store/swapreactiontitle"
	"github.com/broadcastr/broadcastr-backend/internal/store/toplistening"
	"github.com/broadcastr/broadcastr-backend/internal/store/track"
	"github.com/broadcastr/broadcastr-backend/internal/store/user"
)

type Store struct {
	User              user.IStore
	Artist            artist.IStore
	Track             track.IStore
	Broadcast         broadcast.IStore
	Like              like.IStore
	Following         following.IStore
	DirectMessage     directmessage.IStore
	SongSwap          songswap.IStore
	SwapReactionTitle swapreactiontitle.IStore
	TopListening      toplistening.IStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		User:              user.New(),
		Artist:            artist.New(),
		Track:             track.New(),
		Broadcast:         broadcast.New(),
		Like:              like.New(),
		Following:         following.New(),
		DirectMessage:     directmessage.New(),
		SongSwap:          songswap.New(),
		SwapReactionTitle: swapreactiontitle.New(),
		TopListening:      toplistening.New(),
	}
}
