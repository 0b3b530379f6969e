package broadcast

import "github.com/gin-gonic/gin"

type IHandler interface {
	CreateBroadcast(c *gin.Context)
	DeleteBroadcast(c *gin.Context)
	GetBroadcasts(c *gin.Context)
	GetFeed(c *gin.Context)
	GetTopBroadcastedTracks(c *gin.Context)
}
