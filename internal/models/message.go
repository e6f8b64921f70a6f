package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FromUsername string     `json:"from_username" gorm:"index;not null"`
	ToUsername   string     `json:"to_username" gorm:"index;not null"`
	Body         string     `json:"body" gorm:"type:text;not null"`
	SentAt       time.Time  `json:"sent_at" gorm:"autoCreateTime"`
	ReadAt       *time.Time `json:"read_at"`
	FromUser     User       `json:"-" gorm:"foreignKey:FromUsername;references:Username"`
	ToUser       User       `json:"-" gorm:"foreignKey:ToUsername;references:Username"`
}

// MessageView is a message shaped for API responses, with the relevant
// counterpart users embedded as summaries. Listings of sent messages embed
// only to_user, listings of received messages only from_user; the detail
// view carries both.
type MessageView struct {
	ID       uuid.UUID    `json:"id"`
	Body     string       `json:"body"`
	SentAt   time.Time    `json:"sent_at"`
	ReadAt   *time.Time   `json:"read_at"`
	FromUser *UserSummary `json:"from_user,omitempty"`
	ToUser   *UserSummary `json:"to_user,omitempty"`
}
