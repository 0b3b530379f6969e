package httputil

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/swapstate"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

// RespondError writes the {"error": ...} envelope with the status a
// controller error maps to.
func RespondError(c *gin.Context, err error) {
	c.JSON(StatusOf(err), view.Error(err.Error()))
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, controller.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, controller.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, controller.ErrNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, controller.ErrAlreadyExists),
		errors.Is(err, controller.ErrNoMatchAvailable),
		errors.Is(err, controller.ErrInvalidReaction),
		errors.Is(err, controller.ErrReactionTooEarly),
		errors.Is(err, controller.ErrTrackAlreadyAdded):
		return http.StatusBadRequest
	case errors.Is(err, swapstate.ErrIntegrity):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// QueryInt64 parses a required int64 query parameter. The bool reports
// whether the parameter was present and well formed; the handler has
// already received a 400 when it is false.
func QueryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, view.Error("missing required parameter: "+name))
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.Error("invalid parameter: "+name))
		return 0, false
	}
	return v, true
}

// OptionalInt64 parses an int64 query parameter that may be absent.
func OptionalInt64(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.Error("invalid parameter: "+name))
		return nil, false
	}
	return &v, true
}

// QueryString fetches a required string query parameter.
func QueryString(c *gin.Context, name string) (string, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, view.Error("missing required parameter: "+name))
		return "", false
	}
	return raw, true
}
