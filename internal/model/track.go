package model

type Track struct {
	ID             int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	TrackName      string `json:"track" gorm:"column:track_name;type:varchar(512);not null;index"`
	ArtistID       int64  `json:"-" gorm:"column:artist_id;not null;index"`
	Mbid           string `json:"-" gorm:"column:mbid;type:varchar(64)"`
	LastfmTrackURL string `json:"lastfmtrackurl" gorm:"column:lastfm_track_url;type:varchar(512)"`

	Artist *Artist `json:"-" gorm:"foreignKey:ArtistID"`
}

func (Track) TableName() string {
	return "tracks"
}
