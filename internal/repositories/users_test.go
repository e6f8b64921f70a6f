package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/messagely/messagely/internal/models"
	"github.com/messagely/messagely/internal/repositories"
)

func TestUserStore_Register(t *testing.T) {
	users, _ := setupStores(t)
	ctx := context.Background()

	user := registerUser(t, users, "alice")
	if user.Password == "secret" {
		t.Error("password stored in plaintext")
	}
	if user.JoinAt.IsZero() {
		t.Error("join_at not set at creation")
	}
	if user.LastLoginAt != nil {
		t.Error("last_login_at set before first login")
	}

	// Same username again must fail and leave a single record.
	_, err := users.Register(ctx, repositories.RegisterInput{
		Username:  "alice",
		Password:  "other",
		FirstName: "Other",
		LastName:  "Person",
		Phone:     "+14151111111",
	})
	if !errors.Is(err, models.ErrDuplicateUsername) {
		t.Fatalf("duplicate register error = %v, want ErrDuplicateUsername", err)
	}

	all, err := users.All(ctx)
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d users after duplicate register, want 1", len(all))
	}
}

func TestUserStore_RegisterValidation(t *testing.T) {
	users, _ := setupStores(t)

	tests := []struct {
		name  string
		input repositories.RegisterInput
	}{
		{"missing username", repositories.RegisterInput{Password: "x", FirstName: "A", LastName: "B", Phone: "C"}},
		{"missing password", repositories.RegisterInput{Username: "a", FirstName: "A", LastName: "B", Phone: "C"}},
		{"missing first name", repositories.RegisterInput{Username: "a", Password: "x", LastName: "B", Phone: "C"}},
		{"missing last name", repositories.RegisterInput{Username: "a", Password: "x", FirstName: "A", Phone: "C"}},
		{"missing phone", repositories.RegisterInput{Username: "a", Password: "x", FirstName: "A", LastName: "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := users.Register(context.Background(), tt.input)
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("Register() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUserStore_Authenticate(t *testing.T) {
	users, _ := setupStores(t)
	registerUser(t, users, "alice")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct password", "alice", "secret", true},
		{"wrong password", "alice", "wrong", false},
		{"unknown username", "nobody", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := users.Authenticate(context.Background(), tt.username, tt.password)
			if err != nil {
				t.Fatalf("Authenticate() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Authenticate(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestUserStore_UpdateLoginTimestamp(t *testing.T) {
	users, _ := setupStores(t)
	ctx := context.Background()
	registerUser(t, users, "alice")

	if err := users.UpdateLoginTimestamp(ctx, "alice"); err != nil {
		t.Fatalf("UpdateLoginTimestamp() error: %v", err)
	}

	user, err := users.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if user.LastLoginAt == nil {
		t.Error("last_login_at still null after UpdateLoginTimestamp")
	}

	// Unknown username is a no-op, not an error.
	if err := users.UpdateLoginTimestamp(ctx, "nobody"); err != nil {
		t.Errorf("UpdateLoginTimestamp(unknown) error: %v", err)
	}
}

func TestUserStore_Get(t *testing.T) {
	users, _ := setupStores(t)
	registerUser(t, users, "alice")

	user, err := users.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if user.Username != "alice" || user.FirstName != "Test" || user.Phone != "+14150000000" {
		t.Errorf("Get() = %+v, fields do not match registration", user)
	}

	_, err = users.Get(context.Background(), "nobody")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Get(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestUserStore_Messages(t *testing.T) {
	users, messages := setupStores(t)
	ctx := context.Background()
	registerUser(t, users, "alice")
	registerUser(t, users, "bob")

	sent := sendMessage(t, messages, "alice", "bob", "Hi Bob")

	from, err := users.MessagesFrom(ctx, "alice")
	if err != nil {
		t.Fatalf("MessagesFrom() error: %v", err)
	}
	if len(from) != 1 {
		t.Fatalf("MessagesFrom() returned %d messages, want 1", len(from))
	}
	if from[0].ID != sent.ID || from[0].Body != "Hi Bob" {
		t.Errorf("MessagesFrom()[0] = %+v, want message %s", from[0], sent.ID)
	}
	if from[0].ToUser == nil || from[0].ToUser.Username != "bob" {
		t.Errorf("MessagesFrom()[0].ToUser = %+v, want embedded bob", from[0].ToUser)
	}
	if from[0].FromUser != nil {
		t.Error("MessagesFrom() should not embed the sender")
	}

	to, err := users.MessagesTo(ctx, "bob")
	if err != nil {
		t.Fatalf("MessagesTo() error: %v", err)
	}
	if len(to) != 1 {
		t.Fatalf("MessagesTo() returned %d messages, want 1", len(to))
	}
	if to[0].FromUser == nil || to[0].FromUser.Username != "alice" {
		t.Errorf("MessagesTo()[0].FromUser = %+v, want embedded alice", to[0].FromUser)
	}

	// Users with no messages get empty lists, not errors.
	none, err := users.MessagesFrom(ctx, "bob")
	if err != nil {
		t.Fatalf("MessagesFrom(bob) error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("MessagesFrom(bob) = %d messages, want 0", len(none))
	}
}
