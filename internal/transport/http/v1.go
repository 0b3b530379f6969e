package http

import (
	"github.com/gin-gonic/gin"

	"github.com/broadcastr/broadcastr-backend/internal/handler"
)

func loadAPIRoutes(r *gin.Engine, h *handler.Handler) {
	api := r.Group("/api")
	{
		api.POST("/create-user-profile", h.ProfileHandler.CreateProfile)
		api.POST("/user/create-profile", h.ProfileHandler.CreateProfile)
		api.GET("/get-user-profile", h.ProfileHandler.GetProfiles)
		api.GET("/user/profile", h.ProfileHandler.GetProfiles)
		api.POST("/login", h.ProfileHandler.Login)
		api.POST("/user/login", h.ProfileHandler.Login)
		api.POST("/logout", h.ProfileHandler.Logout)
		api.POST("/reset-password", h.ProfileHandler.ResetPassword)
		api.POST("/user/reset-password", h.ProfileHandler.ResetPassword)
		api.POST("/add-swag", h.ProfileHandler.AddSwag)
		api.POST("/user/add-swag", h.ProfileHandler.AddSwag)

		api.POST("/initiate-song-swap", h.SongSwapHandler.InitiateSongSwap)
		api.POST("/create-song-swap", h.SongSwapHandler.InitiateSongSwap)
		api.POST("/add-song-swap-track", h.SongSwapHandler.AddSwapTrack)
		api.POST("/swap-track", h.SongSwapHandler.AddSwapTrack)
		api.POST("/add-song-swap-reaction", h.SongSwapHandler.AddSwapReaction)
		api.GET("/get-song-swaps", h.SongSwapHandler.GetSongSwaps)
		api.GET("/song-swaps", h.SongSwapHandler.GetSongSwaps)
		api.GET("/track-swaps", h.SongSwapHandler.GetSongSwaps)

		api.POST("/create-broadcast", h.BroadcastHandler.CreateBroadcast)
		api.POST("/delete-broadcast", h.BroadcastHandler.DeleteBroadcast)
		api.GET("/get-broadcasts", h.BroadcastHandler.GetBroadcasts)
		api.GET("/get-feed", h.BroadcastHandler.GetFeed)
		api.GET("/get-top-broadcasted-tracks", h.BroadcastHandler.GetTopBroadcastedTracks)
		api.GET("/user/top-broadcasted-tracks", h.BroadcastHandler.GetTopBroadcastedTracks)

		api.POST("/create-like", h.LikeHandler.CreateLike)
		api.POST("/delete-like", h.LikeHandler.DeleteLike)
		api.POST("/undo-like", h.LikeHandler.DeleteLike)

		api.POST("/follow", h.FollowingHandler.Follow)
		api.POST("/user/follow", h.FollowingHandler.Follow)
		api.POST("/unfollow", h.FollowingHandler.Unfollow)
		api.POST("/user/unfollow", h.FollowingHandler.Unfollow)
		api.GET("/get-followers", h.FollowingHandler.GetFollowers)
		api.GET("/user/followers", h.FollowingHandler.GetFollowers)
		api.GET("/get-following", h.FollowingHandler.GetFollowing)
		api.GET("/user/following", h.FollowingHandler.GetFollowing)

		api.POST("/send-direct-message", h.DirectMessageHandler.SendDirectMessage)
		api.GET("/get-conversations", h.DirectMessageHandler.GetConversations)
		api.GET("/user/conversations", h.DirectMessageHandler.GetConversations)
		api.GET("/get-direct-messages", h.DirectMessageHandler.GetDirectMessages)
		api.GET("/user/direct-messages", h.DirectMessageHandler.GetDirectMessages)
		api.POST("/mark-messages-read", h.DirectMessageHandler.MarkMessagesRead)

		api.GET("/get-top-artists", h.ListeningHandler.GetTopArtists)
		api.GET("/user/top-artists", h.ListeningHandler.GetTopArtists)
		api.GET("/get-top-tracks", h.ListeningHandler.GetTopTracks)
		api.GET("/user/top-tracks", h.ListeningHandler.GetTopTracks)
		api.GET("/get-artist-listens", h.ListeningHandler.GetArtistListens)
		api.GET("/artist/listens", h.ListeningHandler.GetArtistListens)
		api.GET("/get-top-listeners", h.ListeningHandler.GetTopListeners)
		api.GET("/artist/top-listeners", h.ListeningHandler.GetTopListeners)
		api.GET("/artist/by-id", h.ListeningHandler.GetArtist)
		api.POST("/refresh-listening-data", h.ListeningHandler.RefreshListeningData)
	}

	// health checks
	r.GET("/healthz", h.HealthHandler.Basic)
	r.GET("/healthz/db", h.HealthHandler.Database)
	r.GET("/healthz/external", h.HealthHandler.External)
	r.GET("/healthz/jobs", h.HealthHandler.Jobs)

	r.GET("/metrics", h.MetricsHandler.Handler())
}
