package consts

const (
	// SystemAccountID is the reserved user id that authors system broadcasts
	// (welcome posts, swap announcements). It can never log in.
	SystemAccountID = 1

	// SwagStartingBalance is granted to every new profile.
	SwagStartingBalance = 5

	// SwagLikedBroadcast is awarded to a broadcaster when someone else
	// likes their broadcast.
	SwagLikedBroadcast = 1

	// SwapReactionMin and SwapReactionMax bound a song swap rating. The
	// rating value doubles as the swag awarded to the partner.
	SwapReactionMin = 1
	SwapReactionMax = 5

	// MatchmakingWindowDays limits random matchmaking to users who logged
	// in recently.
	MatchmakingWindowDays = 7

	// RefreshAfterDays controls how stale listening data may get before a
	// login triggers a refresh from Last.fm.
	RefreshAfterDays = 1

	// DefaultListLimit applies when a list endpoint gets no limit parameter.
	DefaultListLimit = 50

	// ProfileSearchLimit caps rows returned by a partial profile search.
	ProfileSearchLimit = 10
)

// RefreshPeriods are the Last.fm periods indexed for every user.
var RefreshPeriods = []string{"overall", "7day", "1month", "12month"}
