package model

import "time"

type DirectMessage struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	SenderID    int64     `json:"-" gorm:"column:sender_id;not null;index"`
	RecipientID int64     `json:"-" gorm:"column:recipient_id;not null;index"`
	MessageBody string    `json:"message" gorm:"column:message_body;type:text;not null"`
	Read        bool      `json:"-" gorm:"column:read;default:false"`
	TimeSent    time.Time `json:"timestamp" gorm:"column:time_sent"`

	Sender    *User `json:"-" gorm:"foreignKey:SenderID"`
	Recipient *User `json:"-" gorm:"foreignKey:RecipientID"`
}

func (DirectMessage) TableName() string {
	return "direct_messages"
}
