package lastfm

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadcastr/broadcastr-backend/internal/types/environments"
	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (IClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.AppConfig{
		Lastfm: config.LastfmConfig{
			APIKey:    "test-key",
			BaseURL:   srv.URL,
			RateLimit: 100,
		},
	}
	return New(cfg, logger.New(environments.Test)), srv
}

func TestGetUserInfo(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user.getinfo", r.URL.Query().Get("method"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "coolguy", r.URL.Query().Get("user"))

		w.Write([]byte(`{"user":{"name":"coolguy","url":"https://www.last.fm/user/coolguy",
			"image":[{"#text":"http://img/s.png","size":"small"},{"#text":"http://img/xl.png","size":"extralarge"}]}}`))
	})

	info, err := client.GetUserInfo("coolguy")
	require.NoError(t, err)
	assert.Equal(t, "coolguy", info.Name)
	assert.Equal(t, "https://www.last.fm/user/coolguy", info.ProfileURL)
	assert.Equal(t, "http://img/s.png", info.PfpSmall)
	assert.Equal(t, "http://img/xl.png", info.PfpExtraLarge)
	assert.Empty(t, info.PfpMedium)
}

func TestGetTopArtists(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user.gettopartists", r.URL.Query().Get("method"))
		assert.Equal(t, "7day", r.URL.Query().Get("period"))

		w.Write([]byte(`{"topartists":{"artist":[
			{"name":"Chappell Roan","mbid":"abc","playcount":"128"},
			{"name":"Larry June","mbid":"","playcount":"64"}]}}`))
	})

	artists, err := client.GetTopArtists("coolguy", "7day", 50)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Chappell Roan", artists[0].Name)
	assert.Equal(t, int64(128), artists[0].Playcount)
	assert.Equal(t, int64(64), artists[1].Playcount)
}

func TestGetTopTracks(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"toptracks":{"track":[
			{"name":"Smoothies","mbid":"","url":"https://last.fm/t/1","playcount":"12",
			 "artist":{"name":"Larry June"}}]}}`))
	})

	tracks, err := client.GetTopTracks("coolguy", "overall", 50)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Smoothies", tracks[0].Name)
	assert.Equal(t, "Larry June", tracks[0].Artist)
	assert.Equal(t, "https://last.fm/t/1", tracks[0].URL)
	assert.Equal(t, int64(12), tracks[0].Playcount)
}

func TestCall_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":10,"message":"Invalid API key"}`))
	})

	_, err := client.GetUserInfo("coolguy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}
