package directmessage

import (
	"gorm.io/gorm"

	"github.com/broadcastr/broadcastr-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, message *model.DirectMessage) (*model.DirectMessage, error) {
	return message, tx.Create(message).Error
}

func (s *Store) Conversations(tx *gorm.DB, userID int64, limit int) ([]ConversationRow, error) {
	var rows []ConversationRow
	err := tx.Raw(`
SELECT u.id AS conversant_id,
       u.lastfm_profile_name AS conversant,
       COUNT(*) AS message_count,
       COUNT(*) FILTER (WHERE dm.recipient_id = ? AND NOT dm.read) AS unread_count,
       MAX(dm.time_sent) AS last_conversation
  FROM direct_messages dm
  JOIN users u ON u.id = CASE WHEN dm.sender_id = ? THEN dm.recipient_id ELSE dm.sender_id END
 WHERE dm.sender_id = ? OR dm.recipient_id = ?
 GROUP BY u.id, u.lastfm_profile_name
 ORDER BY last_conversation DESC
 LIMIT ?`, userID, userID, userID, userID, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Between returns the most recent messages of the thread, presented
// oldest first.
func (s *Store) Between(tx *gorm.DB, userID, conversantID int64, limit int) ([]model.DirectMessage, error) {
	var messages []model.DirectMessage
	err := tx.Preload("Sender").Preload("Recipient").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, conversantID, conversantID, userID).
		Order("time_sent DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *Store) MarkRead(tx *gorm.DB, recipientID, senderID int64) error {
	return tx.Model(&model.DirectMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND NOT read", recipientID, senderID).
		UpdateColumn("read", true).Error
}
