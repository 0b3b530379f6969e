// Package swapclient drives the song swap API the way an interactive
// client does: it keeps a local snapshot of the user's swaps, resolves
// each one into a render view, and serializes mutating actions so a
// double-tap can never fire two writes.
package swapclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/broadcastr/broadcastr-backend/internal/consts"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/swapstate"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

var (
	ErrActionInFlight    = errors.New("another swap action is still in flight")
	ErrNoStagedTrack     = errors.New("no track staged for this swap")
	ErrUnknownSwap       = errors.New("swap not in local snapshot")
	ErrNotAwaitingRating = errors.New("swap is not awaiting a rating from this user")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// Session is one user's live view of their swaps. Safe for concurrent
// use; only one mutating action runs at a time.
type Session struct {
	baseURL string
	userID  int64
	client  *http.Client
	logger  *logger.Logger

	mu       sync.Mutex
	inFlight bool
	swaps    map[int64]*model.SongSwap
	staged   map[int64]int64
}

func New(baseURL string, userID int64, logger *logger.Logger) *Session {
	return &Session{
		baseURL: baseURL,
		userID:  userID,
		client:  &http.Client{},
		logger:  logger,
		swaps:   make(map[int64]*model.SongSwap),
		staged:  make(map[int64]int64),
	}
}

// Refresh replaces the local snapshot with the server's current state.
func (s *Session) Refresh() error {
	params := url.Values{"userid": {strconv.FormatInt(s.userID, 10)}}
	body, err := s.get("/api/get-song-swaps", params)
	if err != nil {
		return err
	}

	var res view.SongSwapsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return errors.Wrap(err, "failed to decode song swaps")
	}

	swaps := make(map[int64]*model.SongSwap, len(res.SongSwaps))
	for i := range res.SongSwaps {
		swap := toModel(&res.SongSwaps[i])
		swaps[swap.ID] = swap
	}

	s.mu.Lock()
	s.swaps = swaps
	s.mu.Unlock()
	return nil
}

// View resolves one swap from the snapshot into its render view for
// this user. A staged pick shows up on the action view until it is
// submitted.
func (s *Session) View(swapID int64) (*swapstate.ViewSpec, error) {
	s.mu.Lock()
	swap, ok := s.swaps[swapID]
	stagedID, hasStaged := s.staged[swapID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrUnknownSwap
	}

	role, err := swapstate.RoleFor(swap, s.userID)
	if err != nil {
		return nil, err
	}
	spec, err := swapstate.SelectView(swap, role)
	if err != nil {
		return nil, err
	}
	if spec.Action != nil && hasStaged {
		spec.Action.SelectedTrack = &swapstate.TrackRef{ID: stagedID}
	}
	return spec, nil
}

// Views resolves every swap in the snapshot, keyed by swap id. Swaps
// that fail integrity checks are skipped and logged rather than hiding
// the rest.
func (s *Session) Views() map[int64]*swapstate.ViewSpec {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.swaps))
	for id := range s.swaps {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	views := make(map[int64]*swapstate.ViewSpec, len(ids))
	for _, id := range ids {
		spec, err := s.View(id)
		if err != nil {
			s.logger.Error("[Views][View]", map[string]string{
				"swap_id": strconv.FormatInt(id, 10),
				"error":   err.Error(),
			})
			continue
		}
		views[id] = spec
	}
	return views
}

// StageTrack records the track the user picked without sending it.
func (s *Session) StageTrack(swapID, trackID int64) {
	s.mu.Lock()
	s.staged[swapID] = trackID
	s.mu.Unlock()
}

// StagedTrack reports the staged track for a swap, if any.
func (s *Session) StagedTrack(swapID int64) (int64, bool) {
	s.mu.Lock()
	trackID, ok := s.staged[swapID]
	s.mu.Unlock()
	return trackID, ok
}

// SubmitStagedTrack sends the staged track to the server. On failure
// the staged track is kept so the user can retry without re-picking;
// on success the stage is cleared and the snapshot refetched.
func (s *Session) SubmitStagedTrack(swapID int64) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	s.mu.Lock()
	trackID, ok := s.staged[swapID]
	s.mu.Unlock()
	if !ok {
		return ErrNoStagedTrack
	}

	err := s.post("/api/add-song-swap-track", url.Values{
		"songswapid": {strconv.FormatInt(swapID, 10)},
		"userid":     {strconv.FormatInt(s.userID, 10)},
		"trackid":    {strconv.FormatInt(trackID, 10)},
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.staged, swapID)
	s.mu.Unlock()

	return s.Refresh()
}

// SubmitReaction rates the partner's track and refetches the snapshot.
// It refuses locally, without touching the network, when the swap is
// not in the rate stage for this user or the rating is out of range.
func (s *Session) SubmitReaction(swapID, reaction int64) error {
	if reaction < consts.SwapReactionMin || reaction > consts.SwapReactionMax {
		return ErrInvalidRating
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	spec, err := s.View(swapID)
	if err != nil {
		return err
	}
	if spec.Action == nil || spec.Action.Stage != swapstate.StageRate {
		return ErrNotAwaitingRating
	}

	err = s.post("/api/add-song-swap-reaction", url.Values{
		"songswapid": {strconv.FormatInt(swapID, 10)},
		"userid":     {strconv.FormatInt(s.userID, 10)},
		"reaction":   {strconv.FormatInt(reaction, 10)},
	})
	if err != nil {
		return err
	}

	return s.Refresh()
}

func (s *Session) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrActionInFlight
	}
	s.inFlight = true
	return nil
}

func (s *Session) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Session) get(path string, params url.Values) ([]byte, error) {
	resp, err := s.client.Get(fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to request %s", path)
	}
	return readResponse(resp, path)
}

func (s *Session) post(path string, params url.Values) error {
	resp, err := s.client.Post(
		fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode()), "", nil)
	if err != nil {
		return errors.Wrapf(err, "failed to request %s", path)
	}
	_, err = readResponse(resp, path)
	return err
}

func readResponse(resp *http.Response, path string) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s response", path)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr view.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, errors.New(apiErr.Error)
		}
		return nil, errors.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return body, nil
}
