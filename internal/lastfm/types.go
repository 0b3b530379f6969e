package lastfm

// UserInfo is the subset of user.getinfo this service keeps.
type UserInfo struct {
	Name          string
	ProfileURL    string
	PfpSmall      string
	PfpMedium     string
	PfpLarge      string
	PfpExtraLarge string
}

type TopArtistEntry struct {
	Name      string
	Mbid      string
	Playcount int64
}

type TopTrackEntry struct {
	Name      string
	Artist    string
	Mbid      string
	URL       string
	Playcount int64
}

type apiImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

type userInfoResponse struct {
	User struct {
		Name  string     `json:"name"`
		URL   string     `json:"url"`
		Image []apiImage `json:"image"`
	} `json:"user"`
}

type topArtistsResponse struct {
	TopArtists struct {
		Artist []struct {
			Name      string `json:"name"`
			Mbid      string `json:"mbid"`
			Playcount string `json:"playcount"`
		} `json:"artist"`
	} `json:"topartists"`
}

type topTracksResponse struct {
	TopTracks struct {
		Track []struct {
			Name      string `json:"name"`
			Mbid      string `json:"mbid"`
			URL       string `json:"url"`
			Playcount string `json:"playcount"`
			Artist    struct {
				Name string `json:"name"`
			} `json:"artist"`
		} `json:"track"`
	} `json:"toptracks"`
}

type apiError struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}
