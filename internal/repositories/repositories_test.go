package repositories_test

import (
	"context"
	"testing"

	"github.com/messagely/messagely/internal/auth"
	"github.com/messagely/messagely/internal/models"
	"github.com/messagely/messagely/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupStores opens a fresh in-memory database per test.
func setupStores(t *testing.T) (*repositories.UserStore, *repositories.MessageStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	creds := auth.NewCredentials(bcrypt.MinCost)
	return repositories.NewUserStore(db, creds), repositories.NewMessageStore(db)
}

func registerUser(t *testing.T, users *repositories.UserStore, username string) *models.User {
	t.Helper()

	user, err := users.Register(context.Background(), repositories.RegisterInput{
		Username:  username,
		Password:  "secret",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+14150000000",
	})
	if err != nil {
		t.Fatalf("register %q: %v", username, err)
	}
	return user
}

func sendMessage(t *testing.T, messages *repositories.MessageStore, from, to, body string) *models.Message {
	t.Helper()

	msg, err := messages.Create(context.Background(), from, to, body)
	if err != nil {
		t.Fatalf("create message %s -> %s: %v", from, to, err)
	}
	return msg
}
