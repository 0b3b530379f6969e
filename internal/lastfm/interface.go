package lastfm

type IClient interface {
	GetUserInfo(username string) (*UserInfo, error)
	GetTopArtists(username, period string, limit int) ([]TopArtistEntry, error)
	GetTopTracks(username, period string, limit int) ([]TopTrackEntry, error)
}
