package listening

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler/httputil"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

type handler struct {
	controller controller.IController
	logger     *logger.Logger
}

func New(controller controller.IController, logger *logger.Logger) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
	}
}

func period(c *gin.Context) string {
	if p := c.Query("period"); p != "" {
		return p
	}
	return "overall"
}

// GetTopArtists godoc
// @Summary A profile's top artists
// @id getTopArtists
// @Tags listening
// @Produce json
// @Param profile query string true "Profile name"
// @Param period query string false "Last.fm period, defaults to overall"
// @Success 200 {object} view.TopArtistsResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-top-artists [get]
func (h *handler) GetTopArtists(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	rows, err := h.controller.GetTopArtists(profile, period(c))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.TopArtistItem, 0, len(rows))
	for _, row := range rows {
		item := view.TopArtistItem{
			ID:        row.ArtistID,
			Scrobbles: row.Playcount,
		}
		if row.Artist != nil {
			item.Name = row.Artist.ArtistName
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, view.TopArtistsResponse{TopArtists: items})
}

// GetTopTracks godoc
// @Summary A profile's top tracks
// @id getTopTracks
// @Tags listening
// @Produce json
// @Param profile query string true "Profile name"
// @Param period query string false "Last.fm period, defaults to overall"
// @Success 200 {object} view.TopTracksResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-top-tracks [get]
func (h *handler) GetTopTracks(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	rows, err := h.controller.GetTopTracks(profile, period(c))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.TopTrackItem, 0, len(rows))
	for _, row := range rows {
		item := view.TopTrackItem{
			ID:        row.TrackID,
			Playcount: row.Playcount,
		}
		if row.Track != nil {
			item.Track = row.Track.TrackName
			item.LastfmTrackURL = row.Track.LastfmTrackURL
			if row.Track.Artist != nil {
				item.Artist = row.Track.Artist.ArtistName
			}
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, view.TopTracksResponse{TopTracks: items})
}

// GetArtistListens godoc
// @Summary A profile's playcount for one artist
// @id getArtistListens
// @Tags listening
// @Produce json
// @Param profile query string true "Profile name"
// @Param artist query string true "Artist name"
// @Param period query string false "Last.fm period, defaults to overall"
// @Success 200 {object} view.ArtistListensResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-artist-listens [get]
func (h *handler) GetArtistListens(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}
	artist, ok := httputil.QueryString(c, "artist")
	if !ok {
		return
	}

	plays, err := h.controller.GetArtistListens(profile, artist, period(c))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ArtistListensResponse{
		User:   profile,
		Artist: artist,
		Period: period(c),
		Plays:  plays,
	})
}

// GetTopListeners godoc
// @Summary Heaviest listeners of an artist
// @id getTopListeners
// @Tags listening
// @Produce json
// @Param artist query string true "Artist name"
// @Param period query string false "Last.fm period, defaults to overall"
// @Success 200 {object} view.TopListenersResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-top-listeners [get]
func (h *handler) GetTopListeners(c *gin.Context) {
	artist, ok := httputil.QueryString(c, "artist")
	if !ok {
		return
	}

	rows, err := h.controller.GetTopListeners(artist, period(c))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.TopListenerItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, view.TopListenerItem{
			Username:  row.ProfileName,
			Playcount: row.Playcount,
		})
	}
	c.JSON(http.StatusOK, view.TopListenersResponse{
		Artist:       artist,
		Period:       period(c),
		TopListeners: items,
	})
}

// GetArtist godoc
// @Summary Look up an artist by id
// @id getArtist
// @Tags listening
// @Produce json
// @Param id query int true "Artist id"
// @Success 200 {object} view.ArtistResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /artist/by-id [get]
func (h *handler) GetArtist(c *gin.Context) {
	artistID, ok := httputil.QueryInt64(c, "id")
	if !ok {
		return
	}

	artist, err := h.controller.GetArtist(artistID)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.ArtistResponse{
		Artist: view.ArtistItem{ID: artist.ID, Name: artist.ArtistName},
	})
}

// RefreshListeningData godoc
// @Summary Pull fresh listening data from Last.fm
// @id refreshListeningData
// @Tags listening
// @Produce json
// @Param userid query int true "User id"
// @Success 200 {object} view.SuccessResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /refresh-listening-data [post]
func (h *handler) RefreshListeningData(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}

	if err := h.controller.RefreshListeningData(userID); err != nil {
		h.logger.Error("[RefreshListeningData][controller.RefreshListeningData]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}
