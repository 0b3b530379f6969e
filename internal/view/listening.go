package view

type TopArtistsResponse struct {
	TopArtists []TopArtistItem `json:"topArtists"`
}

type TopArtistItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Scrobbles int64  `json:"scrobbles"`
	ImageURL  string `json:"imageUrl"`
}

type TopTracksResponse struct {
	TopTracks []TopTrackItem `json:"topTracks"`
}

type TopTrackItem struct {
	ID             int64  `json:"id"`
	Track          string `json:"track"`
	Artist         string `json:"artist"`
	Playcount      int64  `json:"playcount"`
	LastfmTrackURL string `json:"lastfmtrackurl"`
}

type ArtistListensResponse struct {
	User   string `json:"user"`
	Artist string `json:"artist"`
	Period string `json:"period"`
	Plays  int64  `json:"plays"`
}

type TopListenersResponse struct {
	Artist       string            `json:"artist"`
	Period       string            `json:"period"`
	TopListeners []TopListenerItem `json:"topListeners"`
}

type TopListenerItem struct {
	Username  string `json:"username"`
	Playcount int64  `json:"playcount"`
}

type ArtistResponse struct {
	Artist ArtistItem `json:"artist"`
}

type ArtistItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
