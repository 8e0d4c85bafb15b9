package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/studioform/backend/internal/config"
	"github.com/studioform/backend/internal/handler"
	"github.com/studioform/backend/internal/logging"
	"github.com/studioform/backend/internal/notify"
	"github.com/studioform/backend/internal/ratelimit"
	"github.com/studioform/backend/internal/repository"
	"github.com/studioform/backend/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	// Persistence variant: PostgreSQL when DATABASE_URL is set, otherwise
	// forward submissions to the configured workflow webhook.
	var contactRepo repository.ContactRepository
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()
		contactRepo = repository.NewPgContactRepository(pool)
	} else {
		contactRepo = repository.NewWebhookContactRepository(cfg.ForwardWebhookURL)
		slog.Info("persistence: forwarding submissions to workflow webhook")
	}

	notifier := notify.FromConfig(cfg.Notify)
	dispatcher := notify.NewDispatcher(notifier, 30*time.Second)

	limiter := ratelimit.New(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowSeconds)*time.Second)
	contactService := service.NewContactService(contactRepo, limiter, dispatcher, cfg.NotifyBlocking)

	h := handler.New(cfg.AllowedOrigins(), cfg.Environment)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact/submit", contactHandler.Submit)
	mux.HandleFunc("/", h.NotFound)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler.Recover(handler.SecurityHeaders(handler.RequestLogger(h.CORS(mux)))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	// Let in-flight notifications finish before the process exits.
	if err := dispatcher.Shutdown(ctx); err != nil {
		slog.Warn("notifications still in flight at shutdown", "error", err)
	}
}
