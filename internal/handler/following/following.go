package following

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler/httputil"
	storefollowing "github.com/broadcastr/broadcastr-backend/internal/store/following"
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

// Follow godoc
// @Summary Follow a profile
// @id follow
// @Tags following
// @Produce json
// @Param userid query int true "Follower user id"
// @Param profile query string true "Profile to follow"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /follow [post]
func (h *handler) Follow(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	if err := h.controller.Follow(userID, profile); err != nil {
		h.logger.Error("[Follow][controller.Follow]", map[string]string{
			"profile": profile,
			"error":   err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}

// Unfollow godoc
// @Summary Unfollow a profile
// @id unfollow
// @Tags following
// @Produce json
// @Param userid query int true "Follower user id"
// @Param profile query string true "Profile to unfollow"
// @Success 200 {object} view.SuccessResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /unfollow [post]
func (h *handler) Unfollow(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	if err := h.controller.Unfollow(userID, profile); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}

// GetFollowers godoc
// @Summary List a profile's followers
// @id getFollowers
// @Tags following
// @Produce json
// @Param profile query string true "Profile name"
// @Success 200 {object} view.FollowersResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-followers [get]
func (h *handler) GetFollowers(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	rows, err := h.controller.GetFollowers(profile)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.FollowerItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, view.FollowerItem{
			Follower:       row.ProfileName,
			FollowingSince: formatSince(row),
		})
	}
	c.JSON(http.StatusOK, view.FollowersResponse{Followers: items})
}

// GetFollowing godoc
// @Summary List who a profile follows
// @id getFollowing
// @Tags following
// @Produce json
// @Param profile query string true "Profile name"
// @Success 200 {object} view.FollowingResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-following [get]
func (h *handler) GetFollowing(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	rows, err := h.controller.GetFollowing(profile)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.FollowingItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, view.FollowingItem{
			Following:      row.ProfileName,
			FollowingSince: formatSince(row),
		})
	}
	c.JSON(http.StatusOK, view.FollowingResponse{Following: items})
}

func formatSince(row storefollowing.Row) string {
	return row.FollowingSince.UTC().Format(view.TimestampLayout)
}
