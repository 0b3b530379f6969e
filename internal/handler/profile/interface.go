package profile

import "github.com/gin-gonic/gin"

type IHandler interface {
	CreateProfile(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	GetProfiles(c *gin.Context)
	ResetPassword(c *gin.Context)
	AddSwag(c *gin.Context)
}
