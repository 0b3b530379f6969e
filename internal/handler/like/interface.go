package like

import "github.com/gin-gonic/gin"

type IHandler interface {
	CreateLike(c *gin.Context)
	DeleteLike(c *gin.Context)
}
