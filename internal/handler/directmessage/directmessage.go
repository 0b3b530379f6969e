package directmessage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler/httputil"
	"github.com/broadcastr/broadcastr-backend/internal/model"
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

// SendDirectMessage godoc
// @Summary Send a direct message
// @id sendDirectMessage
// @Tags directmessage
// @Produce json
// @Param userid query int true "Sender user id"
// @Param profile query string true "Recipient profile name"
// @Param message query string true "Message body"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /send-direct-message [post]
func (h *handler) SendDirectMessage(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}
	message, ok := httputil.QueryString(c, "message")
	if !ok {
		return
	}

	dm, err := h.controller.SendDirectMessage(userID, profile, message)
	if err != nil {
		h.logger.Error("[SendDirectMessage][controller.SendDirectMessage]", map[string]string{
			"error": err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success(dm.ID))
}

// GetConversations godoc
// @Summary List message threads
// @Description One row per conversant with counts and the time of the
// @Description latest message.
// @id getConversations
// @Tags directmessage
// @Produce json
// @Param userid query int true "User id"
// @Success 200 {object} view.ConversationsResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-conversations [get]
func (h *handler) GetConversations(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}

	rows, err := h.controller.GetConversations(userID)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.ConversationItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, view.ConversationItem{
			Conversant:       row.Conversant,
			MessageCount:     row.MessageCount,
			UnreadCount:      row.UnreadCount,
			LastConversation: row.LastConversation.UTC().Format(view.TimestampLayout),
		})
	}
	c.JSON(http.StatusOK, view.ConversationsResponse{Conversations: items})
}

// GetDirectMessages godoc
// @Summary Fetch a thread
// @Description Returns the full thread with the conversant and marks
// @Description their messages read.
// @id getDirectMessages
// @Tags directmessage
// @Produce json
// @Param userid query int true "User id"
// @Param profile query string true "Conversant profile name"
// @Success 200 {object} view.DirectMessagesResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-direct-messages [get]
func (h *handler) GetDirectMessages(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}

	messages, err := h.controller.GetDirectMessages(userID, profile)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	items := make([]view.DirectMessageItem, 0, len(messages))
	for i := range messages {
		items = append(items, toDirectMessageItem(&messages[i], userID))
	}
	c.JSON(http.StatusOK, view.DirectMessagesResponse{DirectMessages: items})
}

// MarkMessagesRead godoc
// @Summary Mark a thread read
// @Description Marks every message from the sender to the recipient as
// @Description read.
// @id markMessagesRead
// @Tags directmessage
// @Produce json
// @Param sender query string true "Sender profile name"
// @Param recipient query string true "Recipient profile name"
// @Success 200 {object} view.SuccessResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /mark-messages-read [post]
func (h *handler) MarkMessagesRead(c *gin.Context) {
	sender, ok := httputil.QueryString(c, "sender")
	if !ok {
		return
	}
	recipient, ok := httputil.QueryString(c, "recipient")
	if !ok {
		return
	}

	if err := h.controller.MarkMessagesRead(sender, recipient); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success("direct message records marked as read"))
}

func toDirectMessageItem(dm *model.DirectMessage, viewerID int64) view.DirectMessageItem {
	direction := "received"
	if dm.SenderID == viewerID {
		direction = "sent"
	}

	item := view.DirectMessageItem{
		ID:        dm.ID,
		Type:      direction,
		Message:   dm.MessageBody,
		Timestamp: dm.TimeSent.UTC().Format(view.TimestampLayout),
	}
	if dm.Sender != nil {
		item.Sender = dm.Sender.LastfmProfileName
	}
	if dm.Recipient != nil {
		item.Recipient = dm.Recipient.LastfmProfileName
	}
	return item
}
