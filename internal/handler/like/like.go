package like

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

// CreateLike godoc
// @Summary Like an entity
// @Description Liking a broadcast awards its author a swag point.
// @id createLike
// @Tags like
// @Produce json
// @Param userid query int true "User id"
// @Param type query string true "Entity type"
// @Param relatedid query int true "Entity id"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /create-like [post]
func (h *handler) CreateLike(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	typeName, ok := httputil.QueryString(c, "type")
	if !ok {
		return
	}
	relatedID, ok := httputil.QueryInt64(c, "relatedid")
	if !ok {
		return
	}

	if err := h.controller.CreateLike(userID, typeName, relatedID); err != nil {
		h.logger.Error("[CreateLike][controller.CreateLike]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}

// DeleteLike godoc
// @Summary Remove a like
// @id deleteLike
// @Tags like
// @Produce json
// @Param userid query int true "User id"
// @Param type query string true "Entity type"
// @Param relatedid query int true "Entity id"
// @Success 200 {object} view.SuccessResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /delete-like [post]
func (h *handler) DeleteLike(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	typeName, ok := httputil.QueryString(c, "type")
	if !ok {
		return
	}
	relatedID, ok := httputil.QueryInt64(c, "relatedid")
	if !ok {
		return
	}

	if err := h.controller.DeleteLike(userID, typeName, relatedID); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(true))
}
