package view

import "github.com/broadcastr/broadcastr-backend/internal/model"

type UserProfileResponse struct {
	UserProfile []UserProfileItem `json:"userProfile"`
}

type UserProfileItem struct {
	ID           int64   `json:"id"`
	Profile      string  `json:"profile"`
	FirstName    string  `json:"firstname"`
	LastName     string  `json:"lastname"`
	Email        string  `json:"email"`
	ProfileURL   string  `json:"profileurl"`
	Bootstrapped bool    `json:"bootstrapped"`
	Admin        bool    `json:"admin"`
	LastLogin    *string `json:"lastlogin"`
	PfpSmall     string  `json:"pfpsm"`
	PfpMedium    string  `json:"pfpmed"`
	PfpLarge     string  `json:"pfplg"`
	PfpXL        string  `json:"pfpxl"`
	Swag         int64   `json:"swag"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Token   string `json:"token,omitempty"`
}

type SwagBalanceResponse struct {
	UpdatedSwagBalance int64 `json:"updated swag balance"`
}

func ToUserProfileItem(user *model.User) UserProfileItem {
	return UserProfileItem{
		ID:           user.ID,
		Profile:      user.LastfmProfileName,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.EmailAddress,
		ProfileURL:   user.LastfmProfileURL,
		Bootstrapped: user.Bootstrapped,
		Admin:        user.Admin,
		LastLogin:    formatTimePtr(user.LastLogin),
		PfpSmall:     user.PfpSmall,
		PfpMedium:    user.PfpMedium,
		PfpLarge:     user.PfpLarge,
		PfpXL:        user.PfpExtraLarge,
		Swag:         user.Swag,
	}
}

func ToUserProfileItems(users []model.User) []UserProfileItem {
	items := make([]UserProfileItem, 0, len(users))
	for i := range users {
		items = append(items, ToUserProfileItem(&users[i]))
	}
	return items
}

func ToUserProfileResponse(users []model.User) UserProfileResponse {
	return UserProfileResponse{UserProfile: ToUserProfileItems(users)}
}
