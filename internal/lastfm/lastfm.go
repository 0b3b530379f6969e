package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/broadcastr/broadcastr-backend/internal/utils/config"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
)

type client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *logger.Logger
}

// New builds a Last.fm API client. Requests are throttled to the
// configured rate so refresh jobs stay inside the API's terms.
func New(cfg *config.AppConfig, logger *logger.Logger) IClient {
	return &client{
		baseURL: cfg.Lastfm.BaseURL,
		apiKey:  cfg.Lastfm.APIKey,
		client:  &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(cfg.Lastfm.RateLimit), 1),
		logger:  logger,
	}
}

func (c *client) GetUserInfo(username string) (*UserInfo, error) {
	var res userInfoResponse
	err := c.call("user.getinfo", url.Values{"user": {username}}, &res)
	if err != nil {
		return nil, err
	}

	info := &UserInfo{
		Name:       res.User.Name,
		ProfileURL: res.User.URL,
	}
	for _, img := range res.User.Image {
		switch img.Size {
		case "small":
			info.PfpSmall = img.URL
		case "medium":
			info.PfpMedium = img.URL
		case "large":
			info.PfpLarge = img.URL
		case "extralarge":
			info.PfpExtraLarge = img.URL
		}
	}
	return info, nil
}

func (c *client) GetTopArtists(username, period string, limit int) ([]TopArtistEntry, error) {
	var res topArtistsResponse
	err := c.call("user.gettopartists", url.Values{
		"user":   {username},
		"period": {period},
		"limit":  {strconv.Itoa(limit)},
	}, &res)
	if err != nil {
		return nil, err
	}

	entries := make([]TopArtistEntry, 0, len(res.TopArtists.Artist))
	for _, a := range res.TopArtists.Artist {
		playcount, _ := strconv.ParseInt(a.Playcount, 10, 64)
		entries = append(entries, TopArtistEntry{
			Name:      a.Name,
			Mbid:      a.Mbid,
			Playcount: playcount,
		})
	}
	return entries, nil
}

func (c *client) GetTopTracks(username, period string, limit int) ([]TopTrackEntry, error) {
	var res topTracksResponse
	err := c.call("user.gettoptracks", url.Values{
		"user":   {username},
		"period": {period},
		"limit":  {strconv.Itoa(limit)},
	}, &res)
	if err != nil {
		return nil, err
	}

	entries := make([]TopTrackEntry, 0, len(res.TopTracks.Track))
	for _, t := range res.TopTracks.Track {
		playcount, _ := strconv.ParseInt(t.Playcount, 10, 64)
		entries = append(entries, TopTrackEntry{
			Name:      t.Name,
			Artist:    t.Artist.Name,
			Mbid:      t.Mbid,
			URL:       t.URL,
			Playcount: playcount,
		})
	}
	return entries, nil
}

func (c *client) call(method string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return errors.Wrap(err, "rate limiter interrupted")
	}

	params.Set("method", method)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	resp, err := c.client.Get(reqURL)
	if err != nil {
		c.logger.Error("[call][client.Get]", map[string]string{
			"method": method,
			"error":  err.Error(),
		})
		return errors.Wrap(err, "failed to request lastfm")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read lastfm response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return errors.Errorf("lastfm error %d: %s", apiErr.Error, apiErr.Message)
		}
		return errors.Errorf("lastfm returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode lastfm response")
	}
	return nil
}
