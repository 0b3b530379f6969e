package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/broadcastr/broadcastr-backend/internal/auth"
	"github.com/broadcastr/broadcastr-backend/internal/controller"
	"github.com/broadcastr/broadcastr-backend/internal/handler/httputil"
	"github.com/broadcastr/broadcastr-backend/internal/utils/logger"
	"github.com/broadcastr/broadcastr-backend/internal/view"
)

type createProfileParams struct {
	Profile   string `validate:"required,min=2,max=255"`
	FirstName string `validate:"max=255"`
	LastName  string `validate:"max=255"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
}

type handler struct {
	controller controller.IController
	sessions   *auth.Registry
	logger     *logger.Logger
}

func New(controller controller.IController, sessions *auth.Registry, logger *logger.Logger) IHandler {
	return &handler{
		controller: controller,
		sessions:   sessions,
		logger:     logger,
	}
}

// CreateProfile godoc
// @Summary Register a new profile
// @Description Creates a user keyed to a Last.fm profile name
// @id createProfile
// @Tags profile
// @Produce json
// @Param profile query string true "Last.fm profile name"
// @Param firstname query string false "First name"
// @Param lastname query string false "Last name"
// @Param email query string true "Email address"
// @Param password query string true "Password"
// @Success 200 {object} view.SuccessResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /create-user-profile [post]
func (h *handler) CreateProfile(c *gin.Context) {
	params := createProfileParams{
		Profile:   c.Query("profile"),
		FirstName: c.Query("firstname"),
		LastName:  c.Query("lastname"),
		Email:     c.Query("email"),
		Password:  c.Query("password"),
	}
	if err := validator.New().Struct(params); err != nil {
		h.logger.Error("[CreateProfile][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.Error("invalid request"))
		return
	}

	user, err := h.controller.CreateProfile(controller.CreateProfileInput{
		Profile:   params.Profile,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  params.Password,
	})
	if err != nil {
		h.logger.Error("[CreateProfile][controller.CreateProfile]", map[string]string{
			"profile": params.Profile,
			"error":   err.Error(),
		})
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.Success(user.LastfmProfileName+" created"))
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a session token
// @id login
// @Tags profile
// @Produce json
// @Param profile query string true "Profile name or email"
// @Param password query string true "Password"
// @Success 200 {object} view.LoginResponse
// @Failure 401 {object} view.ErrorResponse
// @Router /login [post]
func (h *handler) Login(c *gin.Context) {
	profile, ok := httputil.QueryString(c, "profile")
	if !ok {
		return
	}
	password, ok := httputil.QueryString(c, "password")
	if !ok {
		return
	}

	user, refreshDue, err := h.controller.Login(profile, password)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	// Stale listening data refreshes behind the login response.
	if refreshDue {
		go func(userID int64) {
			if err := h.controller.RefreshListeningData(userID); err != nil {
				h.logger.Error("[Login][RefreshListeningData]", map[string]string{
					"error": err.Error(),
				})
			}
		}(user.ID)
	}

	c.JSON(http.StatusOK, view.LoginResponse{
		Success: true,
		Token:   h.sessions.Issue(user.ID),
	})
}

// Logout godoc
// @Summary Log out
// @id logout
// @Tags profile
// @Produce json
// @Param token query string true "Session token"
// @Success 200 {object} view.SuccessResponse
// @Router /logout [post]
func (h *handler) Logout(c *gin.Context) {
	token, ok := httputil.QueryString(c, "token")
	if !ok {
		return
	}
	h.sessions.Revoke(token)
	c.JSON(http.StatusOK, view.Success(true))
}

// GetProfiles godoc
// @Summary Look up profiles
// @Description Exact lookup by default, substring search with partial=true
// @id getProfiles
// @Tags profile
// @Produce json
// @Param profile query string false "Profile name or search term (user is an alias)"
// @Param user query string false "Profile name or search term"
// @Param partial query bool false "Substring search"
// @Success 200 {object} view.UserProfileResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /get-user-profile [get]
func (h *handler) GetProfiles(c *gin.Context) {
	term := c.Query("profile")
	if term == "" {
		term = c.Query("user")
	}
	if term == "" {
		c.JSON(http.StatusBadRequest, view.Error("missing required parameter: profile"))
		return
	}
	partial := c.Query("partial") == "true"

	users, err := h.controller.GetProfiles(term, partial)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.ToUserProfileResponse(users))
}

// ResetPassword godoc
// @Summary Reset a password
// @id resetPassword
// @Tags profile
// @Produce json
// @Param email query string true "Email address"
// @Param password query string true "New password"
// @Success 200 {object} view.SuccessResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /reset-password [post]
func (h *handler) ResetPassword(c *gin.Context) {
	email, ok := httputil.QueryString(c, "email")
	if !ok {
		return
	}
	password, ok := httputil.QueryString(c, "password")
	if !ok {
		return
	}
	if len(password) < 8 {
		c.JSON(http.StatusBadRequest, view.Error("password must be at least 8 characters"))
		return
	}

	if err := h.controller.ResetPassword(email, password); err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Success("password updated"))
}

// AddSwag godoc
// @Summary Grant swag to a user
// @id addSwag
// @Tags profile
// @Produce json
// @Param userid query int true "User id"
// @Param swag query int true "Swag to add"
// @Success 200 {object} view.SwagBalanceResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /add-swag [post]
func (h *handler) AddSwag(c *gin.Context) {
	userID, ok := httputil.QueryInt64(c, "userid")
	if !ok {
		return
	}
	amount, ok := httputil.QueryInt64(c, "swag")
	if !ok {
		return
	}

	balance, err := h.controller.AddSwag(userID, amount)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.SwagBalanceResponse{UpdatedSwagBalance: balance})
}
