package model

import "time"

// TopArtist and TopTrack hold a user's Last.fm listening counts for one
// period ("overall", "7day", "1month", "12month"). Rows are replaced
// wholesale on refresh.
type TopArtist struct {
	ID          int64     `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	UserID      int64     `json:"-" gorm:"column:user_id;not null;index:idx_top_artists_user_period"`
	ArtistID    int64     `json:"-" gorm:"column:artist_id;not null"`
	Period      string    `json:"period" gorm:"column:period;type:varchar(16);not null;index:idx_top_artists_user_period"`
	Playcount   int64     `json:"playcount" gorm:"column:playcount;not null"`
	LastUpdated time.Time `json:"-" gorm:"column:last_updated"`

	Artist *Artist `json:"-" gorm:"foreignKey:ArtistID"`
}

func (TopArtist) TableName() string {
	return "top_artists"
}

type TopTrack struct {
	ID          int64     `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	UserID      int64     `json:"-" gorm:"column:user_id;not null;index:idx_top_tracks_user_period"`
	TrackID     int64     `json:"-" gorm:"column:track_id;not null"`
	Period      string    `json:"period" gorm:"column:period;type:varchar(16);not null;index:idx_top_tracks_user_period"`
	Playcount   int64     `json:"playcount" gorm:"column:playcount;not null"`
	LastUpdated time.Time `json:"-" gorm:"column:last_updated"`

	Track *Track `json:"-" gorm:"foreignKey:TrackID"`
}

func (TopTrack) TableName() string {
	return "top_tracks"
}
