package swapclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadcastr/broadcastr-backend/internal/swapstate"
	"github.com/broadcastr/broadcastr-backend/internal/types/environments"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

// fakeAPI serves a mutable song swap snapshot and scripted mutation
// outcomes.
type fakeAPI struct {
	mu        sync.Mutex
	swaps     []view.SongSwapItem
	failWrite bool
	writes    int
	fetches   int
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/get-song-swaps", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.fetches++
		json.NewEncoder(w).Encode(view.SongSwapsResponse{SongSwaps: f.swaps})
	})
	mutate := func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failWrite {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(view.Error("database unavailable"))
			return
		}
		f.writes++
		json.NewEncoder(w).Encode(view.Success(true))
	}
	mux.HandleFunc("/api/add-song-swap-track", mutate)
	mux.HandleFunc("/api/add-song-swap-reaction", mutate)
	return mux
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func bothTracksItem() view.SongSwapItem {
	return view.SongSwapItem{
		ID:                     7,
		InitiatedUserID:        1,
		InitiatedUser:          "chappellfan",
		MatchedUserID:          2,
		MatchedUser:            "junehead",
		InitiatedTrackID:       int64Ptr(11),
		InitiatedTrackName:     strPtr("Pink Pony Club"),
		InitiatedArtistID:      int64Ptr(21),
		InitiatedArtistName:    strPtr("Chappell Roan"),
		MatchedTrackID:         int64Ptr(12),
		MatchedTrackName:       strPtr("Smoothies"),
		MatchedArtistID:        int64Ptr(22),
		MatchedArtistName:      strPtr("Larry June"),
		SwapInitiatedTimestamp: "2025-08-30 12:00:00",
	}
}

func newTestSession(t *testing.T, api *fakeAPI, userID int64) *Session {
	t.Helper()
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return New(srv.URL, userID, logger.New(environments.Test))
}

func TestRefreshAndView(t *testing.T) {
	api := &fakeAPI{swaps: []view.SongSwapItem{bothTracksItem()}}
	session := newTestSession(t, api, 1)

	require.NoError(t, session.Refresh())

	spec, err := session.View(7)
	require.NoError(t, err)
	assert.Equal(t, swapstate.StatusActionRequired, spec.Status)
	assert.Equal(t, swapstate.RoleInitiated, spec.Role)
	assert.Equal(t, "junehead", spec.OtherUser)
	require.NotNil(t, spec.Action)
	assert.Equal(t, swapstate.StageRate, spec.Action.Stage)
	assert.Equal(t, "Smoothies", spec.Action.ReceivedTrack.Title)
}

func TestView_UnknownSwap(t *testing.T) {
	session := newTestSession(t, &fakeAPI{}, 1)
	require.NoError(t, session.Refresh())

	_, err := session.View(99)
	assert.ErrorIs(t, err, ErrUnknownSwap)
}

func TestSubmitStagedTrack_FailureKeepsStage(t *testing.T) {
	item := bothTracksItem()
	item.MatchedTrackID = nil
	item.MatchedTrackName = nil
	api := &fakeAPI{swaps: []view.SongSwapItem{item}, failWrite: true}

	session := newTestSession(t, api, 2)
	require.NoError(t, session.Refresh())

	session.StageTrack(7, 12)
	err := session.SubmitStagedTrack(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unavailable")

	// The pick survives the failed write so the user can retry.
	staged, ok := session.StagedTrack(7)
	assert.True(t, ok)
	assert.Equal(t, int64(12), staged)
}

func TestSubmitStagedTrack_SuccessClearsStageAndRefetches(t *testing.T) {
	item := bothTracksItem()
	item.MatchedTrackID = nil
	item.MatchedTrackName = nil
	api := &fakeAPI{swaps: []view.SongSwapItem{item}}

	session := newTestSession(t, api, 2)
	require.NoError(t, session.Refresh())
	fetchesBefore := api.fetches

	session.StageTrack(7, 12)
	require.NoError(t, session.SubmitStagedTrack(7))

	_, ok := session.StagedTrack(7)
	assert.False(t, ok)
	assert.Equal(t, 1, api.writes)
	assert.Equal(t, fetchesBefore+1, api.fetches, "successful write must refetch")
}

func TestSubmitStagedTrack_NothingStaged(t *testing.T) {
	session := newTestSession(t, &fakeAPI{}, 1)
	assert.ErrorIs(t, session.SubmitStagedTrack(7), ErrNoStagedTrack)
}

func TestSubmitReaction_RefusedOutsideRateStage(t *testing.T) {
	// The matched viewer still owes a track, so a rating must be
	// refused locally instead of hitting the server.
	item := bothTracksItem()
	item.MatchedTrackID = nil
	item.MatchedTrackName = nil
	api := &fakeAPI{swaps: []view.SongSwapItem{item}}

	session := newTestSession(t, api, 2)
	require.NoError(t, session.Refresh())

	assert.ErrorIs(t, session.SubmitReaction(7, 4), ErrNotAwaitingRating)
	assert.Equal(t, 0, api.writes)
}

func TestSubmitReaction_OutOfRange(t *testing.T) {
	api := &fakeAPI{swaps: []view.SongSwapItem{bothTracksItem()}}
	session := newTestSession(t, api, 1)
	require.NoError(t, session.Refresh())

	assert.ErrorIs(t, session.SubmitReaction(7, 0), ErrInvalidRating)
	assert.ErrorIs(t, session.SubmitReaction(7, 6), ErrInvalidRating)
	assert.Equal(t, 0, api.writes)
}

func TestView_ShowsStagedTrack(t *testing.T) {
	item := bothTracksItem()
	item.MatchedTrackID = nil
	item.MatchedTrackName = nil
	api := &fakeAPI{swaps: []view.SongSwapItem{item}}

	session := newTestSession(t, api, 2)
	require.NoError(t, session.Refresh())

	session.StageTrack(7, 12)

	spec, err := session.View(7)
	require.NoError(t, err)
	require.NotNil(t, spec.Action)
	assert.Equal(t, swapstate.StageSelect, spec.Action.Stage)
	require.NotNil(t, spec.Action.SelectedTrack)
	assert.EqualValues(t, 12, spec.Action.SelectedTrack.ID)
}

func TestSubmitReaction_Refetches(t *testing.T) {
	api := &fakeAPI{swaps: []view.SongSwapItem{bothTracksItem()}}
	session := newTestSession(t, api, 1)
	require.NoError(t, session.Refresh())

	// The server's post-write state carries the new reaction.
	api.mu.Lock()
	api.swaps[0].InitiatedReaction = int64Ptr(5)
	api.mu.Unlock()

	require.NoError(t, session.SubmitReaction(7, 5))

	spec, err := session.View(7)
	require.NoError(t, err)
	assert.Equal(t, swapstate.StatusPending, spec.Status)
	require.NotNil(t, spec.Pending)
	require.NotNil(t, spec.Pending.ReceivedRating)
	assert.Equal(t, int64(5), *spec.Pending.ReceivedRating)
}

func TestActionsAreSerialized(t *testing.T) {
	session := newTestSession(t, &fakeAPI{}, 1)

	// Hold the in-flight slot the way a running action would.
	require.NoError(t, session.begin())
	defer session.end()

	assert.ErrorIs(t, session.SubmitReaction(7, 3), ErrActionInFlight)
	session.StageTrack(7, 12)
	assert.ErrorIs(t, session.SubmitStagedTrack(7), ErrActionInFlight)
}

func TestViews_SkipsCorruptSwaps(t *testing.T) {
	good := bothTracksItem()
	corrupt := bothTracksItem()
	corrupt.ID = 8
	corrupt.MatchedTrackID = nil
	corrupt.MatchedTrackName = nil
	corrupt.InitiatedReaction = int64Ptr(4) // reaction without the rated track

	api := &fakeAPI{swaps: []view.SongSwapItem{good, corrupt}}
	session := newTestSession(t, api, 1)
	require.NoError(t, session.Refresh())

	views := session.Views()
	assert.Contains(t, views, int64(7))
	assert.NotContains(t, views, int64(8))
}
