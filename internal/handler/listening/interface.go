package listening

import "github.com/gin-gonic/gin"

type IHandler interface {
	GetTopArtists(c *gin.Context)
	GetTopTracks(c *gin.Context)
	GetArtistListens(c *gin.Context)
	GetTopListeners(c *gin.Context)
	GetArtist(c *gin.Context)
	RefreshListeningData(c *gin.Context)
}
