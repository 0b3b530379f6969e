package songswap

import "github.com/gin-gonic/gin"

type IHandler interface {
	InitiateSongSwap(c *gin.Context)
	AddSwapTrack(c *gin.Context)
	AddSwapReaction(c *gin.Context)
	GetSongSwaps(c *gin.Context)
}
