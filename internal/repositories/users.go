package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/messagely/messagely/internal/auth"
	"github.com/messagely/messagely/internal/models"
	"gorm.io/gorm"
)

// UserStore is the user directory: registration, authentication, and the
// per-user message listings.
type UserStore struct {
	db    *gorm.DB
	creds auth.Credentials
}

func NewUserStore(db *gorm.DB, creds auth.Credentials) *UserStore {
	return &UserStore{db: db, creds: creds}
}

type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Register creates a user with the password stored only as a bcrypt hash.
func (s *UserStore) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Username == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" || in.Phone == "" {
		return nil, fmt.Errorf("register: %w", models.ErrValidation)
	}

	// Check if username already exists
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", in.Username).First(&existing).Error
	switch {
	case err == nil:
		return nil, fmt.Errorf("register %q: %w", in.Username, models.ErrDuplicateUsername)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// new user
	default:
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hashed, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  in.Username,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		JoinAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		// The unique primary key backstops the race between the lookup
		// above and this insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("register %q: %w", in.Username, models.ErrDuplicateUsername)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate reports whether the username/password pair is valid. An
// unknown username or wrong password is false, not an error.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("lookup username: %w", err)
	}
	return s.creds.Verify(password, user.Password), nil
}

// UpdateLoginTimestamp sets last_login_at to now. Matching zero rows is
// not an error.
func (s *UserStore) UpdateLoginTimestamp(ctx context.Context, username string) error {
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ?", username).
		Update("last_login_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("update login timestamp: %w", err)
	}
	return nil
}

// All returns the public summary of every user.
func (s *UserStore) All(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Order("username").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the full user record including timestamps.
func (s *UserStore) Get(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// MessagesFrom lists messages the user sent, each with the recipient
// embedded.
func (s *UserStore) MessagesFrom(ctx context.Context, username string) ([]models.MessageView, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Preload("ToUser").
		Where("from_username = ?", username).
		Order("sent_at").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("messages from %q: %w", username, err)
	}

	views := make([]models.MessageView, 0, len(msgs))
	for _, m := range msgs {
		to := m.ToUser.Summary()
		views = append(views, models.MessageView{
			ID:     m.ID,
			Body:   m.Body,
			SentAt: m.SentAt,
			ReadAt: m.ReadAt,
			ToUser: &to,
		})
	}
	return views, nil
}

// MessagesTo lists messages the user received, each with the sender
// embedded.
func (s *UserStore) MessagesTo(ctx context.Context, username string) ([]models.MessageView, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Preload("FromUser").
		Where("to_username = ?", username).
		Order("sent_at").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("messages to %q: %w", username, err)
	}

	views := make([]models.MessageView, 0, len(msgs))
	for _, m := range msgs {
		from := m.FromUser.Summary()
		views = append(views, models.MessageView{
			ID:       m.ID,
			Body:     m.Body,
			SentAt:   m.SentAt,
			ReadAt:   m.ReadAt,
			FromUser: &from,
		})
	}
	return views, nil
}
