package view

type BroadcastsResponse struct {
	Broadcasts []BroadcastItem `json:"broadcasts"`
}

type BroadcastItem struct {
	ID        int64  `json:"id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	RelatedTo string `json:"relatedto"`
	RelatedID int64  `json:"relatedid"`
	Likes     int64  `json:"likes"`
}

type TopBroadcastedTracksResponse struct {
	TopTracks []TopBroadcastedTrackItem `json:"topTracks"`
}

type TopBroadcastedTrackItem struct {
	BroadcastID    int64  `json:"broadcastid"`
	TrackID        int64  `json:"trackid"`
	Track          string `json:"track"`
	Artist         string `json:"artist"`
	LastfmTrackURL string `json:"lastfmtrackurl"`
	Likes          int64  `json:"likes"`
}
