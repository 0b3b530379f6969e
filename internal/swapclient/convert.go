package swapclient

import (
	"time"

	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

// toModel rebuilds a swap record from the flattened wire row so the
// status resolver can run on it locally.
func toModel(item *view.SongSwapItem) *model.SongSwap {
	swap := &model.SongSwap{
		ID:                         item.ID,
		InitiatedUserID:            item.InitiatedUserID,
		MatchedUserID:              item.MatchedUserID,
		InitiatedTrackID:           item.InitiatedTrackID,
		MatchedTrackID:             item.MatchedTrackID,
		InitiatedReaction:          item.InitiatedReaction,
		MatchedReaction:            item.MatchedReaction,
		SwapInitiatedTimestamp:     parseTime(item.SwapInitiatedTimestamp),
		InitiatedTrackTimestamp:    parseTimePtr(item.InitiatedTrackTimestamp),
		MatchedTrackTimestamp:      parseTimePtr(item.MatchedTrackTimestamp),
		InitiatedReactionTimestamp: parseTimePtr(item.InitiatedReactionTimestamp),
		MatchedReactionTimestamp:   parseTimePtr(item.MatchedReactionTimestamp),
	}

	swap.InitiatedUser = &model.User{
		ID:                item.InitiatedUserID,
		LastfmProfileName: item.InitiatedUser,
	}
	swap.MatchedUser = &model.User{
		ID:                item.MatchedUserID,
		LastfmProfileName: item.MatchedUser,
	}

	if item.InitiatedTrackID != nil && item.InitiatedTrackName != nil {
		swap.InitiatedTrack = toTrack(*item.InitiatedTrackID,
			*item.InitiatedTrackName, item.InitiatedArtistID, item.InitiatedArtistName)
	}
	if item.MatchedTrackID != nil && item.MatchedTrackName != nil {
		swap.MatchedTrack = toTrack(*item.MatchedTrackID,
			*item.MatchedTrackName, item.MatchedArtistID, item.MatchedArtistName)
	}

	return swap
}

func toTrack(id int64, name string, artistID *int64, artistName *string) *model.Track {
	track := &model.Track{
		ID:        id,
		TrackName: name,
	}
	if artistID != nil && artistName != nil {
		track.ArtistID = *artistID
		track.Artist = &model.Artist{
			ID:         *artistID,
			ArtistName: *artistName,
		}
	}
	return track
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(view.TimestampLayout, s)
	return t
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseTime(*s)
	return &t
}
