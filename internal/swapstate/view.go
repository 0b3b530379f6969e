package swapstate

import "github.com/broadcastr/broadcastr-backend/internal/model"

// RatingStage is the substate of an ActionRequired view: the viewer
// either still has to pick and send a track, or has a received track
// awaiting their rating.
type RatingStage string

const (
	StageSelect RatingStage = "select"
	StageRate   RatingStage = "rate"
)

// TrackRef is the minimal track reference a swap view needs.
type TrackRef struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// ViewSpec carries everything a client needs to render one swap for one
// viewer. Exactly one of Pending, Action, Completed is set, matching
// Status.
type ViewSpec struct {
	Status    Status `json:"status"`
	Role      Role   `json:"role"`
	OtherUser string `json:"other_user"`

	Pending   *PendingView        `json:"pending,omitempty"`
	Action    *ActionRequiredView `json:"action_required,omitempty"`
	Completed *CompletedView      `json:"completed,omitempty"`
}

// PendingView shows what the viewer already contributed while the
// partner's move is awaited. ReceivedTrack and ReceivedRating are only
// set when the viewer has both (to show "what you already rated").
type PendingView struct {
	SentTrack      *TrackRef `json:"sent_track,omitempty"`
	ReceivedTrack  *TrackRef `json:"received_track,omitempty"`
	ReceivedRating *int64    `json:"received_rating,omitempty"`
}

// ActionRequiredView tells the viewer what step advances the swap.
// IsReceiver is true when the viewer still owes a track rather than a
// rating. SelectedTrack is a pick staged locally but not yet
// submitted; SelectView leaves it nil and stateful callers fill it in.
type ActionRequiredView struct {
	IsReceiver    bool        `json:"is_receiver"`
	Stage         RatingStage `json:"rating_stage"`
	ReceivedTrack *TrackRef   `json:"received_track,omitempty"`
	SelectedTrack *TrackRef   `json:"selected_track,omitempty"`
}

// CompletedView reports the final exchange. SentSwag is what the
// viewer's own track earned (the partner's reaction to it); ReceivedSwag
// is what the viewer awarded. The swag value is the raw 1-5 rating.
type CompletedView struct {
	SentTrack     *TrackRef `json:"sent_track"`
	ReceivedTrack *TrackRef `json:"received_track"`
	SentSwag      int64     `json:"sent_swag"`
	ReceivedSwag  int64     `json:"received_swag"`
}

// SelectView resolves the swap's status for the role and assembles the
// matching render-mode payload. Integrity violations propagate as
// ErrIntegrity and produce no view.
func SelectView(swap *model.SongSwap, role Role) (*ViewSpec, error) {
	status, err := Resolve(swap, role)
	if err != nil {
		return nil, err
	}

	spec := &ViewSpec{
		Status:    status,
		Role:      role,
		OtherUser: otherUserName(swap, role),
	}

	switch status {
	case StatusPending:
		p := &PendingView{SentTrack: sentTrack(swap, role)}
		if recv, rating := receivedTrack(swap, role), ownReaction(swap, role); recv != nil && rating != nil {
			p.ReceivedTrack = recv
			p.ReceivedRating = rating
		}
		spec.Pending = p
	case StatusActionRequired:
		// The substate keys on the viewer's own side: no sent track yet
		// means they still owe one; otherwise the received track awaits
		// their rating.
		a := &ActionRequiredView{IsReceiver: sentTrack(swap, role) == nil}
		if a.IsReceiver {
			a.Stage = StageSelect
		} else {
			a.Stage = StageRate
			a.ReceivedTrack = receivedTrack(swap, role)
		}
		spec.Action = a
	case StatusCompleted:
		spec.Completed = &CompletedView{
			SentTrack:     sentTrack(swap, role),
			ReceivedTrack: receivedTrack(swap, role),
			SentSwag:      *partnerReaction(swap, role),
			ReceivedSwag:  *ownReaction(swap, role),
		}
	}

	return spec, nil
}

func sentTrack(swap *model.SongSwap, role Role) *TrackRef {
	if role == RoleInitiated {
		return trackRef(swap.InitiatedTrackID, swap.InitiatedTrack)
	}
	return trackRef(swap.MatchedTrackID, swap.MatchedTrack)
}

func receivedTrack(swap *model.SongSwap, role Role) *TrackRef {
	if role == RoleInitiated {
		return trackRef(swap.MatchedTrackID, swap.MatchedTrack)
	}
	return trackRef(swap.InitiatedTrackID, swap.InitiatedTrack)
}

// ownReaction is the rating this viewer gave to the track they received.
func ownReaction(swap *model.SongSwap, role Role) *int64 {
	if role == RoleInitiated {
		return swap.InitiatedReaction
	}
	return swap.MatchedReaction
}

// partnerReaction is the rating the viewer's own track earned.
func partnerReaction(swap *model.SongSwap, role Role) *int64 {
	if role == RoleInitiated {
		return swap.MatchedReaction
	}
	return swap.InitiatedReaction
}

func otherUserName(swap *model.SongSwap, role Role) string {
	if role == RoleInitiated {
		if swap.MatchedUser != nil {
			return swap.MatchedUser.LastfmProfileName
		}
		return ""
	}
	if swap.InitiatedUser != nil {
		return swap.InitiatedUser.LastfmProfileName
	}
	return ""
}

func trackRef(id *int64, track *model.Track) *TrackRef {
	if id == nil {
		return nil
	}
	ref := &TrackRef{ID: *id}
	if track != nil {
		ref.Title = track.TrackName
		if track.Artist != nil {
			ref.Artist = track.Artist.ArtistName
		}
	}
	return ref
}
