package model

import "time"

type Like struct {
	ID            int64       `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserID        int64       `json:"-" gorm:"column:user_id;not null;uniqueIndex:idx_likes_user_related"`
	RelatedTypeID RelatedType `json:"-" gorm:"column:related_type_id;not null;uniqueIndex:idx_likes_user_related"`
	RelatedID     int64       `json:"relatedid" gorm:"column:related_id;not null;uniqueIndex:idx_likes_user_related"`
	Timestamp     time.Time   `json:"timestamp" gorm:"column:timestamp"`
}

func (Like) TableName() string {
	return "likes"
}
