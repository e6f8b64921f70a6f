package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/messagely/messagely/internal/models"
	"gorm.io/gorm"
)

// MessageStore is plain CRUD over messages. Authorization (who may view,
// who may mark read) is the caller's job.
type MessageStore struct {
	db *gorm.DB
}

func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Create inserts a message from one user to another. The id is assigned
// here and sent_at is the insertion time. The recipient must exist.
func (s *MessageStore) Create(ctx context.Context, from, to, body string) (*models.Message, error) {
	if to == "" || body == "" {
		return nil, fmt.Errorf("create message: %w", models.ErrValidation)
	}

	var recipient models.User
	err := s.db.WithContext(ctx).Where("username = ?", to).First(&recipient).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("recipient %q: %w", to, models.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("lookup recipient: %w", err)
	}

	msg := &models.Message{
		ID:           uuid.New(),
		FromUsername: from,
		ToUsername:   to,
		Body:         body,
		SentAt:       time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// Get returns the message with both endpoint users loaded.
func (s *MessageStore) Get(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := s.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("id = ?", id).
		First(&msg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("message %s: %w", id, models.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &msg, nil
}

// MarkRead stamps read_at with the current time and returns the updated
// message. read_at only ever moves from null to a timestamp; marking an
// already-read message refreshes the timestamp.
func (s *MessageStore) MarkRead(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var msg models.Message
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("message %s: %w", id, models.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("get message: %w", err)
	}

	now := time.Now()
	err = s.db.WithContext(ctx).
		Model(&msg).
		Update("read_at", now).Error
	if err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	msg.ReadAt = &now
	return &msg, nil
}
