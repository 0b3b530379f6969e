package songswap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/model"
	"github.com/broadcastr/broadcastr-backend/internal/types/environments"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

// fakeController stubs the few swap methods the handler calls. The
// embedded interface panics on anything else, which is what we want.
type fakeController struct {
	controller.IController

	initiateFn func(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error)
	addTrackFn func(swapID, userID, trackID int64) (*model.SongSwap, error)
	reactFn    func(swapID, userID, reaction int64) (*model.SongSwap, error)
	listFn     func(userID int64, swapID *int64) ([]model.SongSwap, error)
	resolveFn  func(profileName string) (int64, error)
}

func (f *fakeController) ResolveProfileID(profileName string) (int64, error) {
	return f.resolveFn(profileName)
}

func (f *fakeController) InitiateSongSwap(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error) {
	return f.initiateFn(userID, matchedUserID, trackID)
}

func (f *fakeController) AddSwapTrack(swapID, userID, trackID int64) (*model.SongSwap, error) {
	return f.addTrackFn(swapID, userID, trackID)
}

func (f *fakeController) AddSwapReaction(swapID, userID, reaction int64) (*model.SongSwap, error) {
	return f.reactFn(swapID, userID, reaction)
}

func (f *fakeController) ListSongSwaps(userID int64, swapID *int64) ([]model.SongSwap, error) {
	return f.listFn(userID, swapID)
}

func newTestRouter(ctrl controller.IController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(ctrl, logger.New(environments.Test))

	router := gin.New()
	router.POST("/initiate-song-swap", h.InitiateSongSwap)
	router.POST("/add-song-swap-track", h.AddSwapTrack)
	router.POST("/add-song-swap-reaction", h.AddSwapReaction)
	router.GET("/get-song-swaps", h.GetSongSwaps)
	return router
}

func TestInitiateSongSwap(t *testing.T) {
	var gotTrackID *int64
	router := newTestRouter(&fakeController{
		initiateFn: func(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error) {
			assert.Equal(t, int64(2), userID)
			assert.Nil(t, matchedUserID)
			gotTrackID = trackID
			return &model.SongSwap{ID: 9, InitiatedUserID: 2, MatchedUserID: 5}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/initiate-song-swap?userid=2&trackid=14", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotTrackID)
	assert.Equal(t, int64(14), *gotTrackID)

	var resp view.SongSwapCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(9), resp.SongSwapID)
	assert.Equal(t, int64(5), resp.MatchedUserID)
}

func TestInitiateSongSwap_ExplicitPartner(t *testing.T) {
	router := newTestRouter(&fakeController{
		initiateFn: func(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error) {
			require.NotNil(t, matchedUserID)
			assert.Equal(t, int64(5), *matchedUserID)
			assert.Nil(t, trackID)
			return &model.SongSwap{ID: 9, InitiatedUserID: userID, MatchedUserID: *matchedUserID}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/initiate-song-swap?userid=2&matcheduserid=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitiateSongSwap_NoMatch(t *testing.T) {
	router := newTestRouter(&fakeController{
		initiateFn: func(int64, *int64, *int64) (*model.SongSwap, error) {
			return nil, controller.ErrNoMatchAvailable
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/initiate-song-swap?userid=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp view.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, controller.ErrNoMatchAvailable.Error(), resp.Error)
}

func TestInitiateSongSwap_MissingUserID(t *testing.T) {
	router := newTestRouter(&fakeController{
		initiateFn: func(int64, *int64, *int64) (*model.SongSwap, error) {
			t.Fatal("controller should not be called")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/initiate-song-swap", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSwapTrack(t *testing.T) {
	router := newTestRouter(&fakeController{
		addTrackFn: func(swapID, userID, trackID int64) (*model.SongSwap, error) {
			assert.Equal(t, int64(9), swapID)
			assert.Equal(t, int64(5), userID)
			assert.Equal(t, int64(31), trackID)
			return &model.SongSwap{ID: 9}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/add-song-swap-track?songswapid=9&userid=5&trackid=31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestAddSwapTrack_AlreadyAdded(t *testing.T) {
	router := newTestRouter(&fakeController{
		addTrackFn: func(int64, int64, int64) (*model.SongSwap, error) {
			return nil, controller.ErrTrackAlreadyAdded
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/add-song-swap-track?songswapid=9&userid=5&trackid=31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSwapReaction(t *testing.T) {
	router := newTestRouter(&fakeController{
		reactFn: func(swapID, userID, reaction int64) (*model.SongSwap, error) {
			assert.Equal(t, int64(9), swapID)
			assert.Equal(t, int64(2), userID)
			assert.Equal(t, int64(4), reaction)
			return &model.SongSwap{ID: 9}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/add-song-swap-reaction?songswapid=9&userid=2&reaction=4", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestAddSwapReaction_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"too early", controller.ErrReactionTooEarly, http.StatusBadRequest},
		{"out of range", controller.ErrInvalidReaction, http.StatusBadRequest},
		{"already reacted", controller.ErrAlreadyExists, http.StatusBadRequest},
		{"not a participant", controller.ErrNotAllowed, http.StatusForbidden},
		{"unknown swap", controller.ErrNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeController{
				reactFn: func(int64, int64, int64) (*model.SongSwap, error) {
					return nil, tc.err
				},
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/add-song-swap-reaction?songswapid=9&userid=2&reaction=4", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestGetSongSwaps(t *testing.T) {
	initiated := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	router := newTestRouter(&fakeController{
		listFn: func(userID int64, swapID *int64) ([]model.SongSwap, error) {
			assert.Equal(t, int64(2), userID)
			assert.Nil(t, swapID)
			return []model.SongSwap{
				{
					ID:                     9,
					InitiatedUserID:        2,
					MatchedUserID:          5,
					SwapInitiatedTimestamp: initiated,
					InitiatedUser:          &model.User{ID: 2, LastfmProfileName: "ritu"},
					MatchedUser:            &model.User{ID: 5, LastfmProfileName: "sam"},
				},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/get-song-swaps?userid=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp view.SongSwapsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.SongSwaps, 1)
	assert.Equal(t, int64(9), resp.SongSwaps[0].ID)
	assert.Equal(t, "ritu", resp.SongSwaps[0].InitiatedUser)
	assert.Equal(t, "sam", resp.SongSwaps[0].MatchedUser)
	assert.Equal(t, "2025-08-30 12:00:00", resp.SongSwaps[0].SwapInitiatedTimestamp)
	assert.Nil(t, resp.SongSwaps[0].InitiatedTrackID)
}

func TestGetSongSwaps_ByProfileName(t *testing.T) {
	router := newTestRouter(&fakeController{
		resolveFn: func(profileName string) (int64, error) {
			assert.Equal(t, "ritu", profileName)
			return 2, nil
		},
		listFn: func(userID int64, swapID *int64) ([]model.SongSwap, error) {
			assert.Equal(t, int64(2), userID)
			require.NotNil(t, swapID)
			assert.Equal(t, int64(9), *swapID)
			return []model.SongSwap{{ID: 9, InitiatedUserID: 2, MatchedUserID: 5}}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/get-song-swaps?user=ritu&songswapid=9", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp view.SongSwapsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.SongSwaps, 1)
	assert.Equal(t, int64(9), resp.SongSwaps[0].ID)
}

func TestGetSongSwaps_UnknownProfileName(t *testing.T) {
	router := newTestRouter(&fakeController{
		resolveFn: func(string) (int64, error) {
			return 0, controller.ErrNotFound
		},
		listFn: func(int64, *int64) ([]model.SongSwap, error) {
			t.Fatal("controller should not be called")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/get-song-swaps?user=nobody", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInitiateSongSwap_ByProfileNames(t *testing.T) {
	ids := map[string]int64{"ritu": 2, "sam": 5}
	router := newTestRouter(&fakeController{
		resolveFn: func(profileName string) (int64, error) {
			id, ok := ids[profileName]
			require.True(t, ok, "unexpected profile name %q", profileName)
			return id, nil
		},
		initiateFn: func(userID int64, matchedUserID, trackID *int64) (*model.SongSwap, error) {
			assert.Equal(t, int64(2), userID)
			require.NotNil(t, matchedUserID)
			assert.Equal(t, int64(5), *matchedUserID)
			assert.Nil(t, trackID)
			return &model.SongSwap{ID: 9, InitiatedUserID: 2, MatchedUserID: 5}, nil
		},
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/initiate-song-swap?user=ritu&matched_user=sam", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp view.SongSwapCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(9), resp.SongSwapID)
}
