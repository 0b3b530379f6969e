package songswap

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

// viewerID accepts the viewer either as a numeric userid or as a
// profile name in the user parameter, the way the original wire
// contract spells it.
func (h *handler) viewerID(c *gin.Context) (int64, bool) {
	if name := c.Query("user"); name != "" {
		id, err := h.controller.ResolveProfileID(name)
		if err != nil {
			httputil.RespondError(c, err)
			return 0, false
		}
		return id, true
	}
	return httputil.QueryInt64(c, "userid")
}

// InitiateSongSwap godoc
// @Summary Start a song swap
// @Description Opens a swap with the named partner, or with a random
// @Description recently active user when no partner is given. A track
// @Description may be staged on the new swap in the same call.
// @id initiateSongSwap
// @Tags songswap
// @Produce json
// @Param user query string false "Initiating profile name (or pass userid)"
// @Param userid query int false "Initiating user id"
// @Param matched_user query string false "Explicit partner profile name"
// @Param matcheduserid query int false "Explicit partner user id"
// @Param trackid query int false "Track to stage"
// @Success 200 {object} view.SongSwapCreatedResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /initiate-song-swap [post]
func (h *handler) InitiateSongSwap(c *gin.Context) {
	userID, ok := h.viewerID(c)
	if !ok {
		return
	}

	var matchedUserID *int64
	if name := c.Query("matched_user"); name != "" {
		id, err := h.controller.ResolveProfileID(name)
		if err != nil {
			httputil.RespondError(c, err)
			return
		}
		matchedUserID = &id
	} else {
		matchedUserID, ok = httputil.OptionalInt64(c, "matcheduserid")
		if !ok {
			return
		}
	}

	trackID, ok := httputil.OptionalInt64(c, "trackid")
	if !ok {
		return
	}

	swap, err := h.controller.InitiateSongSwap(userID, matchedUserID, trackID)
	if err != nil {
		h.logger.Error("[InitiateSongSwap][controller.InitiateSongSwap]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.SongSwapCreatedResponse{
		Success:       true,
		SongSwapID:    swap.ID,
		MatchedUserID: swap.MatchedUserID,
	})
}

// AddSwapTrack godoc
// @Summary Add a track to a swap
// @Description Writes the caller's side of the exchange. Each side may
// @Description add exactly one track.
// @id addSwapTrack
// @Tags songswap
// @Produce json
// @Param songswapid query int true "Song swap id"
// @Param user query string false "Profile name (or pass userid)"
// @Param userid query int false "User id"
// @Param trackid query int true "Track id"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /add-song-swap-track [post]
func (h *handler) AddSwapTrack(c *gin.Context) {
	swapID, ok := httputil.QueryInt64(c, "songswapid")
	if !ok {
		return
	}
	userID, ok := h.viewerID(c)
	if !ok {
		return
	}
	trackID, ok := httputil.QueryInt64(c, "trackid")
	if !ok {
		return
	}

	if _, err := h.controller.AddSwapTrack(swapID, userID, trackID); err != nil {
		h.logger.Error("[AddSwapTrack][controller.AddSwapTrack]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}

// AddSwapReaction godoc
// @Summary Rate the partner's track
// @Description Records a 1-5 rating. The partner is awarded that many
// @Description swag points and a broadcast announces the rating.
// @id addSwapReaction
// @Tags songswap
// @Produce json
// @Param songswapid query int true "Song swap id"
// @Param user query string false "Profile name (or pass userid)"
// @Param userid query int false "User id"
// @Param reaction query int true "Rating, 1-5"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /add-song-swap-reaction [post]
func (h *handler) AddSwapReaction(c *gin.Context) {
	swapID, ok := httputil.QueryInt64(c, "songswapid")
	if !ok {
		return
	}
	userID, ok := h.viewerID(c)
	if !ok {
		return
	}
	reaction, ok := httputil.QueryInt64(c, "reaction")
	if !ok {
		return
	}

	if _, err := h.controller.AddSwapReaction(swapID, userID, reaction); err != nil {
		h.logger.Error("[AddSwapReaction][controller.AddSwapReaction]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}

// GetSongSwaps godoc
// @Summary List a user's song swaps
// @Description Every swap the user participates in, newest first. Pass
// @Description songswapid to fetch a single swap.
// @id getSongSwaps
// @Tags songswap
// @Produce json
// @Param user query string false "Profile name (or pass userid)"
// @Param userid query int false "User id"
// @Param songswapid query int false "Single swap id"
// @Success 200 {object} view.SongSwapsResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-song-swaps [get]
func (h *handler) GetSongSwaps(c *gin.Context) {
	userID, ok := h.viewerID(c)
	if !ok {
		return
	}
	swapID, ok := httputil.OptionalInt64(c, "songswapid")
	if !ok {
		return
	}

	swaps, err := h.controller.ListSongSwaps(userID, swapID)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.SongSwapsResponse{
		SongSwaps: view.ToSongSwapItems(swaps),
	})
}
