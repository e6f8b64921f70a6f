package api

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"github.com/messagely/messagely/internal/api/handlers"
	"github.com/messagely/messagely/internal/api/middleware"
	"github.com/messagely/messagely/internal/auth"
	"github.com/messagely/messagely/internal/config"
	"github.com/messagely/messagely/internal/repositories"
)

func SetupRouter(cfg config.Config, users *repositories.UserStore, messages *repositories.MessageStore, tokens auth.Tokens) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	authHandler := &handlers.AuthHandler{Users: users, Tokens: tokens}
	userHandler := &handlers.UserHandler{Users: users}
	messageHandler := &handlers.MessageHandler{Messages: messages}

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("POST /register", authHandler.Register)
	mainMux.HandleFunc("POST /login", authHandler.Login)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("GET /users", userHandler.List)
	protectedMux.HandleFunc("GET /users/{username}", userHandler.Get)
	protectedMux.HandleFunc("GET /users/{username}/to", userHandler.MessagesTo)
	protectedMux.HandleFunc("GET /users/{username}/from", userHandler.MessagesFrom)

	protectedMux.HandleFunc("POST /messages", messageHandler.Create)
	protectedMux.HandleFunc("GET /messages/{id}", messageHandler.Get)
	protectedMux.HandleFunc("POST /messages/{id}/read", messageHandler.MarkRead)

	protected := middleware.RequireLogin(protectedMux)
	mainMux.Handle("/users", protected)
	mainMux.Handle("/users/", protected)
	mainMux.Handle("/messages", protected)
	mainMux.Handle("/messages/", protected)

	authenticator := middleware.NewAuthenticator(tokens)
	handler := authenticator.Authenticate(mainMux)
	handler = c.Handler(handler)
	handler = middleware.Logger(handler)
	return handler
}
