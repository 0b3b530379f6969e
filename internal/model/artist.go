package model

type Artist struct {
	ID         int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	ArtistName string `json:"name" gorm:"column:artist_name;type:varchar(512);not null;index"`
	LastfmMbid string `json:"-" gorm:"column:lastfm_mbid;type:varchar(64)"`
}

func (Artist) TableName() string {
	return "artists"
}
