package swapstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

func newSwap(mutate func(*model.SongSwap)) *model.SongSwap {
	swap := &model.SongSwap{
		ID:              42,
		InitiatedUserID: 10,
		MatchedUserID:   20,
		InitiatedUser:   &model.User{ID: 10, LastfmProfileName: "alice_fm"},
		MatchedUser:     &model.User{ID: 20, LastfmProfileName: "bob_fm"},
	}
	if mutate != nil {
		mutate(swap)
	}
	return swap
}

func withInitiatedTrack(swap *model.SongSwap) {
	swap.InitiatedTrackID = int64Ptr(1)
	swap.InitiatedTrack = &model.Track{
		ID:        1,
		TrackName: "Pink Pony Club",
		Artist:    &model.Artist{ID: 7, ArtistName: "Chappell Roan"},
	}
}

func withMatchedTrack(swap *model.SongSwap) {
	swap.MatchedTrackID = int64Ptr(2)
	swap.MatchedTrack = &model.Track{
		ID:        2,
		TrackName: "Smoothies",
		Artist:    &model.Artist{ID: 8, ArtistName: "Larry June"},
	}
}

func TestRoleFor(t *testing.T) {
	swap := newSwap(nil)

	role, err := RoleFor(swap, 10)
	require.NoError(t, err)
	assert.Equal(t, RoleInitiated, role)

	role, err = RoleFor(swap, 20)
	require.NoError(t, err)
	assert.Equal(t, RoleMatched, role)

	_, err = RoleFor(swap, 99)
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestResolve_FreshSwapIsPendingForBothSides(t *testing.T) {
	// Scenario A: nothing sent yet.
	swap := newSwap(nil)

	for _, role := range []Role{RoleInitiated, RoleMatched} {
		status, err := Resolve(swap, role)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, status, "role %s", role)
	}
}

func TestResolve_InitiatedTrackOnly(t *testing.T) {
	// Scenario B: the matched side owes a track.
	swap := newSwap(withInitiatedTrack)

	status, err := Resolve(swap, RoleInitiated)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	status, err = Resolve(swap, RoleMatched)
	require.NoError(t, err)
	assert.Equal(t, StatusActionRequired, status)
}

func TestResolve_BothTracksNoReactions(t *testing.T) {
	// Scenario C: both sides owe a rating.
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		withMatchedTrack(s)
	})

	status, err := Resolve(swap, RoleInitiated)
	require.NoError(t, err)
	assert.Equal(t, StatusActionRequired, status)

	status, err = Resolve(swap, RoleMatched)
	require.NoError(t, err)
	assert.Equal(t, StatusActionRequired, status)
}

func TestResolve_OneReactionIn(t *testing.T) {
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		withMatchedTrack(s)
		s.InitiatedReaction = int64Ptr(5)
	})

	status, err := Resolve(swap, RoleInitiated)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	status, err = Resolve(swap, RoleMatched)
	require.NoError(t, err)
	assert.Equal(t, StatusActionRequired, status)
}

func TestResolve_BothReactionsCompletedForAnyRole(t *testing.T) {
	// Scenario D.
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		withMatchedTrack(s)
		s.InitiatedReaction = int64Ptr(5)
		s.MatchedReaction = int64Ptr(4)
	})

	for _, role := range []Role{RoleInitiated, RoleMatched} {
		status, err := Resolve(swap, role)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, status, "role %s", role)
	}
}

func TestResolve_IsIdempotent(t *testing.T) {
	swap := newSwap(withInitiatedTrack)

	first, err := Resolve(swap, RoleMatched)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Resolve(swap, RoleMatched)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolve_IntegrityViolations(t *testing.T) {
	// Scenario E: initiated side rated a track the matched side never sent.
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		s.InitiatedReaction = int64Ptr(3)
	})

	for _, role := range []Role{RoleInitiated, RoleMatched} {
		_, err := Resolve(swap, role)
		assert.ErrorIs(t, err, ErrIntegrity, "role %s", role)
	}

	// Mirror case: matched reaction without an initiated track.
	swap = newSwap(func(s *model.SongSwap) {
		withMatchedTrack(s)
		s.MatchedReaction = int64Ptr(2)
	})

	for _, role := range []Role{RoleInitiated, RoleMatched} {
		_, err := Resolve(swap, role)
		assert.ErrorIs(t, err, ErrIntegrity, "role %s", role)
	}
}

func TestSelectView_Pending(t *testing.T) {
	swap := newSwap(withInitiatedTrack)

	spec, err := SelectView(swap, RoleInitiated)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, spec.Status)
	assert.Equal(t, "bob_fm", spec.OtherUser)
	require.NotNil(t, spec.Pending)
	assert.Nil(t, spec.Action)
	assert.Nil(t, spec.Completed)

	require.NotNil(t, spec.Pending.SentTrack)
	assert.Equal(t, "Pink Pony Club", spec.Pending.SentTrack.Title)
	assert.Equal(t, "Chappell Roan", spec.Pending.SentTrack.Artist)
	assert.Nil(t, spec.Pending.ReceivedTrack)
	assert.Nil(t, spec.Pending.ReceivedRating)
}

func TestSelectView_PendingShowsAlreadyRatedTrack(t *testing.T) {
	// Initiated side rated already and now waits on the partner's rating.
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		withMatchedTrack(s)
		s.InitiatedReaction = int64Ptr(4)
	})

	spec, err := SelectView(swap, RoleInitiated)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, spec.Status)
	require.NotNil(t, spec.Pending)
	require.NotNil(t, spec.Pending.ReceivedTrack)
	assert.Equal(t, "Smoothies", spec.Pending.ReceivedTrack.Title)
	require.NotNil(t, spec.Pending.ReceivedRating)
	assert.EqualValues(t, 4, *spec.Pending.ReceivedRating)
}

func TestSelectView_ActionRequiredSelectStage(t *testing.T) {
	// Scenario B continued: matched viewer must pick a track first.
	swap := newSwap(withInitiatedTrack)

	spec, err := SelectView(swap, RoleMatched)
	require.NoError(t, err)

	assert.Equal(t, StatusActionRequired, spec.Status)
	assert.Equal(t, "alice_fm", spec.OtherUser)
	require.NotNil(t, spec.Action)
	assert.True(t, spec.Action.IsReceiver)
	assert.Equal(t, StageSelect, spec.Action.Stage)
	assert.Nil(t, spec.Action.ReceivedTrack)
}

func TestSelectView_ActionRequiredRateStage(t *testing.T) {
	// Scenario C: initiated viewer has a received track awaiting a rating.
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		withMatchedTrack(s)
	})

	spec, err := SelectView(swap, RoleInitiated)
	require.NoError(t, err)

	assert.Equal(t, StatusActionRequired, spec.Status)
	require.NotNil(t, spec.Action)
	assert.False(t, spec.Action.IsReceiver)
	assert.Equal(t, StageRate, spec.Action.Stage)
	require.NotNil(t, spec.Action.ReceivedTrack)
	assert.Equal(t, "Smoothies", spec.Action.ReceivedTrack.Title)

	// The matched viewer also rates at this point.
	spec, err = SelectView(swap, RoleMatched)
	require.NoError(t, err)
	require.NotNil(t, spec.Action)
	assert.Equal(t, StageRate, spec.Action.Stage)
	assert.Equal(t, "Pink Pony Club", spec.Action.ReceivedTrack.Title)
}

func TestSelectView_CompletedSwagMapping(t *testing.T) {
	// Scenario D: sentSwag is the partner's rating of your track,
	// receivedSwag is the rating you awarded.
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		withMatchedTrack(s)
		s.InitiatedReaction = int64Ptr(5)
		s.MatchedReaction = int64Ptr(4)
	})

	spec, err := SelectView(swap, RoleInitiated)
	require.NoError(t, err)
	require.NotNil(t, spec.Completed)
	assert.EqualValues(t, 4, spec.Completed.SentSwag)
	assert.EqualValues(t, 5, spec.Completed.ReceivedSwag)
	assert.Equal(t, "Pink Pony Club", spec.Completed.SentTrack.Title)
	assert.Equal(t, "Smoothies", spec.Completed.ReceivedTrack.Title)

	spec, err = SelectView(swap, RoleMatched)
	require.NoError(t, err)
	require.NotNil(t, spec.Completed)
	assert.EqualValues(t, 5, spec.Completed.SentSwag)
	assert.EqualValues(t, 4, spec.Completed.ReceivedSwag)
	assert.Equal(t, "Smoothies", spec.Completed.SentTrack.Title)
	assert.Equal(t, "Pink Pony Club", spec.Completed.ReceivedTrack.Title)
}

func TestSelectView_IntegrityErrorYieldsNoView(t *testing.T) {
	swap := newSwap(func(s *model.SongSwap) {
		withInitiatedTrack(s)
		s.InitiatedReaction = int64Ptr(3)
	})

	spec, err := SelectView(swap, RoleInitiated)
	assert.ErrorIs(t, err, ErrIntegrity)
	assert.Nil(t, spec)
}

func TestSelectView_TrackRefWithoutJoinedTrack(t *testing.T) {
	// A record fetched without joins still yields the track id.
	swap := newSwap(func(s *model.SongSwap) {
		s.InitiatedTrackID = int64Ptr(9)
	})

	spec, err := SelectView(swap, RoleMatched)
	require.NoError(t, err)
	require.NotNil(t, spec.Action)
	assert.True(t, spec.Action.IsReceiver)

	spec, err = SelectView(swap, RoleInitiated)
	require.NoError(t, err)
	require.NotNil(t, spec.Pending.SentTrack)
	assert.EqualValues(t, 9, spec.Pending.SentTrack.ID)
	assert.Empty(t, spec.Pending.SentTrack.Title)
}
