package swapstate

import (
	"github.com/pkg/errors"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

// Role is a viewer's side of a song swap.
type Role string

const (
	RoleInitiated Role = "initiated"
	RoleMatched   Role = "matched"
)

// Status is what a song swap looks like from one participant's side.
type Status string

const (
	StatusPending        Status = "pending"
	StatusActionRequired Status = "action_required"
	StatusCompleted      Status = "completed"
)

var (
	// ErrNotParticipant means the viewer is neither side of the swap.
	ErrNotParticipant = errors.New("user is not a participant in this song swap")

	// ErrIntegrity means a reaction exists for a track that was never
	// sent. Such a record must never resolve to a normal status; the
	// caller surfaces it as a distinct swap-data-error state.
	ErrIntegrity = errors.New("swap record integrity violation: reaction present without received track")
)

// RoleFor derives the viewer's role from the swap record.
func RoleFor(swap *model.SongSwap, userID int64) (Role, error) {
	switch userID {
	case swap.InitiatedUserID:
		return RoleInitiated, nil
	case swap.MatchedUserID:
		return RoleMatched, nil
	}
	return "", ErrNotParticipant
}

// Resolve computes the swap's status as seen by the given role. It is a
// pure function over the record: safe to call repeatedly, no I/O.
//
// The guards form an ordered cascade; the first match wins. Note the
// asymmetry: an initiated-side viewer with no track of their own sees
// Pending, not ActionRequired, because the initiating flow attaches the
// track before or right after the record is created. The matched side
// is prompted to act as soon as the initiator's track lands.
func Resolve(swap *model.SongSwap, role Role) (Status, error) {
	if err := checkIntegrity(swap); err != nil {
		return "", err
	}

	switch role {
	case RoleInitiated:
		if swap.InitiatedTrackID == nil {
			return StatusPending, nil
		}
		if swap.MatchedTrackID == nil {
			return StatusPending, nil
		}
		if swap.InitiatedReaction == nil {
			return StatusActionRequired, nil
		}
		if swap.MatchedReaction == nil {
			return StatusPending, nil
		}
		return StatusCompleted, nil
	case RoleMatched:
		if swap.InitiatedTrackID == nil {
			return StatusPending, nil
		}
		if swap.MatchedTrackID == nil {
			return StatusActionRequired, nil
		}
		if swap.MatchedReaction == nil {
			return StatusActionRequired, nil
		}
		if swap.InitiatedReaction == nil {
			return StatusPending, nil
		}
		return StatusCompleted, nil
	}

	return "", errors.Errorf("unknown swap role: %q", role)
}

// checkIntegrity enforces the record invariant: a reaction can only
// exist for a track that was actually sent. The initiated side rates the
// matched track and vice versa.
func checkIntegrity(swap *model.SongSwap) error {
	if swap.InitiatedReaction != nil && swap.MatchedTrackID == nil {
		return ErrIntegrity
	}
	if swap.MatchedReaction != nil && swap.InitiatedTrackID == nil {
		return ErrIntegrity
	}
	return nil
}
