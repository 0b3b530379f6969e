package model

import "time"

// SongSwap is a paired track exchange between two users. The initiated
// and matched sides write disjoint fields: each adds a track, then rates
// the track the other side sent. Reactions run 1-5 and double as the
// swag awarded to the partner.
type SongSwap struct {
	ID                         int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	InitiatedUserID            int64      `json:"initiated_user_id" gorm:"column:initiated_user_id;not null;index"`
	MatchedUserID              int64      `json:"matched_user_id" gorm:"column:matched_user_id;not null;index"`
	InitiatedTrackID           *int64     `json:"initiated_track_id" gorm:"column:initiated_track_id"`
	MatchedTrackID             *int64     `json:"matched_track_id" gorm:"column:matched_track_id"`
	InitiatedReaction          *int64     `json:"initiated_reaction" gorm:"column:initiated_reaction"`
	MatchedReaction            *int64     `json:"matched_reaction" gorm:"column:matched_reaction"`
	SwapInitiatedTimestamp     time.Time  `json:"swap_initiated_timestamp" gorm:"column:swap_initiated_timestamp"`
	InitiatedTrackTimestamp    *time.Time `json:"initiated_track_timestamp" gorm:"column:initiated_track_timestamp"`
	MatchedTrackTimestamp      *time.Time `json:"matched_track_timestamp" gorm:"column:matched_track_timestamp"`
	InitiatedReactionTimestamp *time.Time `json:"initiated_reaction_timestamp" gorm:"column:initiated_reaction_timestamp"`
	MatchedReactionTimestamp   *time.Time `json:"matched_reaction_timestamp" gorm:"column:matched_reaction_timestamp"`

	InitiatedUser  *User  `json:"-" gorm:"foreignKey:InitiatedUserID"`
	MatchedUser    *User  `json:"-" gorm:"foreignKey:MatchedUserID"`
	InitiatedTrack *Track `json:"-" gorm:"foreignKey:InitiatedTrackID"`
	MatchedTrack   *Track `json:"-" gorm:"foreignKey:MatchedTrackID"`
}

func (SongSwap) TableName() string {
	return "song_swaps"
}
