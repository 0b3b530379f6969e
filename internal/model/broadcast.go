package model

import "time"

type Broadcast struct {
	ID            int64       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID        int64       `json:"-" gorm:"column:user_id;not null;index"`
	Title         string      `json:"title" gorm:"column:title;type:varchar(255)"`
	Body          string      `json:"body" gorm:"column:body;type:text"`
	RelatedTypeID RelatedType `json:"-" gorm:"column:related_type_id;not null"`
	RelatedID     int64       `json:"relatedid" gorm:"column:related_id"`
	Deleted       bool        `json:"-" gorm:"column:deleted;default:false"`
	Timestamp     time.Time   `json:"timestamp" gorm:"column:timestamp"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

func (Broadcast) TableName() string {
	return "broadcasts"
}
