package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/messagely/messagely/internal/api"
	"github.com/messagely/messagely/internal/auth"
	"github.com/messagely/messagely/internal/config"
	"github.com/messagely/messagely/internal/repositories"
)

func main() {
	cfg := config.Load()

	db, err := repositories.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	creds := auth.NewCredentials(cfg.BcryptCost)
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	users := repositories.NewUserStore(db, creds)
	messages := repositories.NewMessageStore(db)

	handler := api.SetupRouter(cfg, users, messages, tokens)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting message.ly server on port: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
