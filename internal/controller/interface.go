package controller

import (
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store/broadcast"
	"github.com/broadcastr/broadcastr-backend/internal/store/directmessage"
	"github.com/broadcastr/broadcastr-backend/internal/store/following"
	"github.com/broadcastr/broadcastr-backend/internal/store/toplistening"
)

type IController interface {
	// CreateProfile registers a user, seeds their profile from Last.fm
	// and posts the system welcome broadcast.
	CreateProfile(input CreateProfileInput) (*model.User, error)

	// Login verifies credentials and stamps last_login. The bool is
	// true when the user's listening data is due a refresh.
	Login(profileOrEmail, password string) (*model.User, bool, error)

	GetProfiles(term string, partial bool) ([]model.User, error)

	// ResolveProfileID maps a profile name to its user id.
	ResolveProfileID(profileName string) (int64, error)
	ResetPassword(email, newPassword string) error
	AddSwag(userID, amount int64) (int64, error)

	// InitiateSongSwap opens a swap with the named partner, or with a
	// random recently active user when no partner is given. A staged
	// track may be attached up front.
	InitiateSongSwap(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error)
	AddSwapTrack(swapID, userID, trackID int64) (*model.SongSwap, error)

	// AddSwapReaction records a 1-5 rating of the partner's track and
	// awards that many swag points to the partner.
	AddSwapReaction(swapID, userID, reaction int64) (*model.SongSwap, error)
	ListSongSwaps(userID int64, swapID *int64) ([]model.SongSwap, error)

	CreateBroadcast(userID int64, title, body string, relatedType model.RelatedType, relatedID int64) (*model.Broadcast, error)
	DeleteBroadcast(userID, broadcastID int64) error
	GetBroadcasts(profileName string) ([]broadcast.FeedRow, error)
	GetFeed(userID int64) ([]broadcast.FeedRow, error)
	GetTopBroadcastedTracks(profileName string) ([]broadcast.TopTrackRow, error)

	// CreateLike likes an entity; liking a broadcast awards its author
	// a swag point.
	CreateLike(userID int64, typeName string, relatedID int64) error
	DeleteLike(userID int64, typeName string, relatedID int64) error

	Follow(followerID int64, followeeProfile string) error
	Unfollow(followerID int64, followeeProfile string) error
	GetFollowers(profileName string) ([]following.Row, error)
	GetFollowing(profileName string) ([]following.Row, error)

	SendDirectMessage(senderID int64, recipientProfile, message string) (*model.DirectMessage, error)
	GetConversations(userID int64) ([]directmessage.ConversationRow, error)

	// GetDirectMessages returns the thread with the conversant and
	// marks their messages read.
	GetDirectMessages(userID int64, conversantProfile string) ([]model.DirectMessage, error)
	MarkMessagesRead(senderProfile, recipientProfile string) error

	// RefreshListeningData pulls top artists and tracks from Last.fm
	// for every configured period and replaces the stored rows.
	RefreshListeningData(userID int64) error
	GetTopArtists(profileName, period string) ([]model.TopArtist, error)
	GetTopTracks(profileName, period string) ([]model.TopTrack, error)
	GetArtist(artistID int64) (*model.Artist, error)
	GetArtistListens(profileName, artistName, period string) (int64, error)
	GetTopListeners(artistName, period string) ([]toplistening.ListenerRow, error)
}
