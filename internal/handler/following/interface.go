package following

import "github.com/gin-gonic/gin"

type IHandler interface {
	Follow(c *gin.Context)
	Unfollow(c *gin.Context)
	GetFollowers(c *gin.Context)
	GetFollowing(c *gin.Context)
}
