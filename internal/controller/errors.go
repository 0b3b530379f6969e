package controller

import "github.com/pkg/errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAllowed         = errors.New("not allowed")
	ErrNoMatchAvailable   = errors.New("no users available to match with")
	ErrInvalidReaction    = errors.New("reaction must be between 1 and 5")
	ErrReactionTooEarly   = errors.New("cannot react before the other user has added a track")
	ErrTrackAlreadyAdded  = errors.New("track already added for this swap")
)
