package directmessage

import (
	"time"

	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

// ConversationRow summarises one thread from a user's point of view.
type ConversationRow struct {
	ConversantID     int64
	Conversant       string
	MessageCount     int64
	UnreadCount      int64
	LastConversation time.Time
}

type IStore interface {
	Create(tx *gorm.DB, message *model.DirectMessage) (*model.DirectMessage, error)
	Conversations(tx *gorm.DB, userID int64, limit int) ([]ConversationRow, error)
	Between(tx *gorm.DB, userID, conversantID int64, limit int) ([]model.DirectMessage, error)
	MarkRead(tx *gorm.DB, recipientID, senderID int64) error
}
