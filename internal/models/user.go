package models

import (
	"time"
)

type User struct {
	Username    string     `json:"username" gorm:"primaryKey"`
	Password    string     `json:"-" gorm:"not null"`
	FirstName   string     `json:"first_name" gorm:"not null"`
	LastName    string     `json:"last_name" gorm:"not null"`
	Phone       string     `json:"phone" gorm:"not null"`
	JoinAt      time.Time  `json:"join_at" gorm:"autoCreateTime"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// UserSummary is the public subset of a user record, used in listings and
// embedded in message views. Never carries the password or timestamps.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}
