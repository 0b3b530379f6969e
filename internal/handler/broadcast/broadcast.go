package broadcast

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler/httputil"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/store/broadcast"
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

// CreateBroadcast godoc
// @Summary Post a broadcast
// @id createBroadcast
// @Tags broadcast
// @Produce json
// @Param userid query int true "Author user id"
// @Param title query string false "Title, required when body is empty"
// @Param body query string false "Body, required when title is empty"
// @Param type query string true "Related entity type"
// @Param relatedid query int false "Related entity id"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /create-broadcast [post]
func (h *handler) CreateBroadcast(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	title := c.Query("title")
	body := c.Query("body")
	if strings.TrimSpace(title) == "" && strings.TrimSpace(body) == "" {
		c.JSON(http.StatusBadRequest, view.Error("title or body is required"))
		return
	}
	typeName, ok := httputil.QueryString(c, "type")
	if !ok {
		return
	}
	relatedType := model.ParseRelatedType(typeName)
	if relatedType == 0 {
		c.JSON(http.StatusBadRequest, view.Error("unknown broadcast type: "+typeName))
		return
	}
	relatedID, ok := httputil.OptionalInt64(c, "relatedid")
	if !ok {
		return
	}
	var related int64
	if relatedID != nil {
		related = *relatedID
	}

	b, err := h.controller.CreateBroadcast(userID, title, body, relatedType, related)
	if err != nil {
		h.logger.Error("[CreateBroadcast][controller.CreateBroadcast]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(b.ID))
}

// DeleteBroadcast godoc
// @Summary Delete a broadcast
// @Description Soft delete. Only the author may remove a broadcast.
// @id deleteBroadcast
// @Tags broadcast
// @Produce json
// @Param userid query int true "Author user id"
// @Param broadcastid query int true "Broadcast id"
// @Success 200 {object} view.SuccessResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /delete-broadcast [post]
func (h *handler) DeleteBroadcast(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	broadcastID, ok := httputil.QueryInt64(c, "broadcastid")
	if !ok {
		return
	}

	if err := h.controller.DeleteBroadcast(userID, broadcastID); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}

// GetBroadcasts godoc
// @Summary List a profile's broadcasts
// @id getBroadcasts
// @Tags broadcast
// @Produce json
// @Param profile query string true "Profile name"
// @Success 200 {object} view.BroadcastsResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-broadcasts [get]
func (h *handler) GetBroadcasts(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	rows, err := h.controller.GetBroadcasts(profile)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBroadcastsResponse(rows))
}

// GetFeed godoc
// @Summary Broadcast feed
// @Description Broadcasts from the user and everyone they follow.
// @id getFeed
// @Tags broadcast
// @Produce json
// @Param userid query int true "User id"
// @Success 200 {object} view.BroadcastsResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-feed [get]
func (h *handler) GetFeed(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}

	rows, err := h.controller.GetFeed(userID)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBroadcastsResponse(rows))
}

// GetTopBroadcastedTracks godoc
// @Summary Most liked broadcasted tracks
// @id getTopBroadcastedTracks
// @Tags broadcast
// @Produce json
// @Param profile query string true "Profile name"
// @Success 200 {object} view.TopBroadcastedTracksResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-top-broadcasted-tracks [get]
func (h *handler) GetTopBroadcastedTracks(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	rows, err := h.controller.GetTopBroadcastedTracks(profile)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.TopBroadcastedTrackItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, view.TopBroadcastedTrackItem{
			BroadcastID:    row.BroadcastID,
			TrackID:        row.TrackID,
			Track:          row.TrackName,
			Artist:         row.ArtistName,
			LastfmTrackURL: row.LastfmTrackURL,
			Likes:          row.Likes,
		})
	}
	c.JSON(http.StatusOK, view.TopBroadcastedTracksResponse{TopTracks: items})
}

func toBroadcastsResponse(rows []broadcast.FeedRow) view.BroadcastsResponse {
	items := make([]view.BroadcastItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, view.BroadcastItem{
			ID:        row.ID,
			User:      row.ProfileName,
			Title:     row.Title,
			Body:      row.Body,
			Timestamp: row.Timestamp.UTC().Format(view.TimestampLayout),
			Type:      row.RelatedTypeID.String(),
			RelatedTo: row.RelatedTo,
			RelatedID: row.RelatedID,
			Likes:     row.Likes,
		})
	}
	return view.BroadcastsResponse{Broadcasts: items}
}
