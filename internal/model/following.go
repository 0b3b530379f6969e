package model

import "time"

type Following struct {
	ID             int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	FollowerID     int64     `json:"-" gorm:"column:follower_id;not null;uniqueIndex:idx_following_pair"`
	FolloweeID     int64     `json:"-" gorm:"column:followee_id;not null;uniqueIndex:idx_following_pair"`
	FollowingSince time.Time `json:"followingsince" gorm:"column:following_since"`

	Follower *User `json:"-" gorm:"foreignKey:FollowerID"`
	Followee *User `json:"-" gorm:"foreignKey:FolloweeID"`
}

func (Following) TableName() string {
	return "followings"
}
