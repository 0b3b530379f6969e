package directmessage

import "github.com/gin-gonic/gin"

type IHandler interface {
	SendDirectMessage(c *gin.Context)
	GetConversations(c *gin.Context)
	GetDirectMessages(c *gin.Context)
	MarkMessagesRead(c *gin.Context)
}
