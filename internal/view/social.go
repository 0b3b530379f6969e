package view

type FollowersResponse struct {
	Followers []FollowerItem `json:"followers"`
}

type FollowerItem struct {
	Follower       string `json:"follower"`
	FollowingSince string `json:"followingsince"`
}

type FollowingResponse struct {
	Following []FollowingItem `json:"following"`
}

type FollowingItem struct {
	Following      string `json:"following"`
	FollowingSince string `json:"followingsince"`
}

type ConversationsResponse struct {
	Conversations []ConversationItem `json:"conversations"`
}

type ConversationItem struct {
	Conversant       string `json:"conversant"`
	MessageCount     int64  `json:"messagecount"`
	UnreadCount      int64  `json:"unreadcount"`
	LastConversation string `json:"lastconversation"`
}

type DirectMessagesResponse struct {
	DirectMessages []DirectMessageItem `json:"directMessages"`
}

type DirectMessageItem struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
