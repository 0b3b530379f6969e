package view

import (
	"time"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type SongSwapsResponse struct {
	SongSwaps []SongSwapItem `json:"songSwaps"`
}

// SongSwapItem is the flattened, join-decorated swap row the original
// API returned from get-song-swaps.
type SongSwapItem struct {
	ID                         int64   `json:"id"`
	InitiatedUserID            int64   `json:"initiated_user_id"`
	InitiatedUser              string  `json:"initiated_user"`
	MatchedUserID              int64   `json:"matched_user_id"`
	MatchedUser                string  `json:"matched_user"`
	InitiatedTrackID           *int64  `json:"initiated_track_id"`
	InitiatedTrackName         *string `json:"initiated_track_name"`
	InitiatedArtistID          *int64  `json:"initiated_artist_id"`
	InitiatedArtistName        *string `json:"initiated_artist_name"`
	MatchedTrackID             *int64  `json:"matched_track_id"`
	MatchedTrackName           *string `json:"matched_track_name"`
	MatchedArtistID            *int64  `json:"matched_artist_id"`
	MatchedArtistName          *string `json:"matched_artist_name"`
	InitiatedReaction          *int64  `json:"initiated_reaction"`
	MatchedReaction            *int64  `json:"matched_reaction"`
	SwapInitiatedTimestamp     string  `json:"swap_initiated_timestamp"`
	InitiatedTrackTimestamp    *string `json:"initiated_track_timestamp"`
	MatchedTrackTimestamp      *string `json:"matched_track_timestamp"`
	InitiatedReactionTimestamp *string `json:"initiated_reaction_timestamp"`
	MatchedReactionTimestamp   *string `json:"matched_reaction_timestamp"`
}

type SongSwapCreatedResponse struct {
	Success       bool  `json:"success"`
	SongSwapID    int64 `json:"song_swap_id"`
	MatchedUserID int64 `json:"matched_user_id"`
}

// ToSongSwapItem flattens a swap record with its joined users, tracks
// and artists into the wire shape.
func ToSongSwapItem(swap *model.SongSwap) SongSwapItem {
	item := SongSwapItem{
		ID:                         swap.ID,
		InitiatedUserID:            swap.InitiatedUserID,
		MatchedUserID:              swap.MatchedUserID,
		InitiatedTrackID:           swap.InitiatedTrackID,
		MatchedTrackID:             swap.MatchedTrackID,
		InitiatedReaction:          swap.InitiatedReaction,
		MatchedReaction:            swap.MatchedReaction,
		SwapInitiatedTimestamp:     swap.SwapInitiatedTimestamp.UTC().Format(TimestampLayout),
		InitiatedTrackTimestamp:    formatTimePtr(swap.InitiatedTrackTimestamp),
		MatchedTrackTimestamp:      formatTimePtr(swap.MatchedTrackTimestamp),
		InitiatedReactionTimestamp: formatTimePtr(swap.InitiatedReactionTimestamp),
		MatchedReactionTimestamp:   formatTimePtr(swap.MatchedReactionTimestamp),
	}

	if swap.InitiatedUser != nil {
		item.InitiatedUser = swap.InitiatedUser.LastfmProfileName
	}
	if swap.MatchedUser != nil {
		item.MatchedUser = swap.MatchedUser.LastfmProfileName
	}
	if track := swap.InitiatedTrack; track != nil {
		item.InitiatedTrackName = &track.TrackName
		if track.Artist != nil {
			item.InitiatedArtistID = &track.Artist.ID
			item.InitiatedArtistName = &track.Artist.ArtistName
		}
	}
	if track := swap.MatchedTrack; track != nil {
		item.MatchedTrackName = &track.TrackName
		if track.Artist != nil {
			item.MatchedArtistID = &track.Artist.ID
			item.MatchedArtistName = &track.Artist.ArtistName
		}
	}

	return item
}

func ToSongSwapItems(swaps []model.SongSwap) []SongSwapItem {
	items := make([]SongSwapItem, 0, len(swaps))
	for i := range swaps {
		items = append(items, ToSongSwapItem(&swaps[i]))
	}
	return items
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(TimestampLayout)
	return &s
}
