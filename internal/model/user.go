package model

import "time"

type User struct {
	ID                int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	LastfmProfileName string     `json:"profile" gorm:"column:lastfm_profile_name;type:varchar(255);not null;uniqueIndex"`
	FirstName         string     `json:"firstname" gorm:"column:first_name;type:varchar(255)"`
	LastName          string     `json:"lastname" gorm:"column:last_name;type:varchar(255)"`
	EmailAddress      string     `json:"email" gorm:"column:email_address;type:varchar(255);uniqueIndex"`
	LastfmProfileURL  string     `json:"profileurl" gorm:"column:lastfm_profile_url;type:varchar(512)"`
	PasswordHash      string     `json:"-" gorm:"column:password_hash;type:varchar(255)"`
	Bootstrapped      bool       `json:"bootstrapped" gorm:"column:bootstrapped;default:false"`
	Admin             bool       `json:"admin" gorm:"column:admin;default:false"`
	LastLogin         *time.Time `json:"lastlogin" gorm:"column:last_login"`
	PfpSmall          string     `json:"pfpsm" gorm:"column:pfp_small;type:varchar(512)"`
	PfpMedium         string     `json:"pfpmed" gorm:"column:pfp_medium;type:varchar(512)"`
	PfpLarge          string     `json:"pfplg" gorm:"column:pfp_large;type:varchar(512)"`
	PfpExtraLarge     string     `json:"pfpxl" gorm:"column:pfp_extra_large;type:varchar(512)"`
	Swag              int64      `json:"swag" gorm:"column:swag;default:0"`
	CreatedAt         time.Time  `json:"-" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
