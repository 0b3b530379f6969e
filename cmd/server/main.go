package main

import (
	"github.com/broadcastr/broadcastr-backend/internal/server"
)

// @title BroadCastr API
// @version 1.0
// @description Social music backend: broadcasts, follows, direct messages and song swaps on top of Last.fm listening data.
// @BasePath /api
func main() {
	server.Init()
}
