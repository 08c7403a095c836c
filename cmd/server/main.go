package main

import (
	"log"
	"net/http"

	"student-feedback-backend/internal/auth"
	"student-feedback-backend/internal/config"
	"student-feedback-backend/internal/handlers"
	"student-feedback-backend/internal/notify"
	"student-feedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()
	lg := logger.Sugar()

	if cfg.UsingDevSecret() {
		lg.Warn("⚠️  JWT_SECRET not set, using insecure development secret")
	}

	// Pick the storage mode once; unreachable MongoDB degrades to memory.
	stores := repository.Select(cfg, lg)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	notifier := notify.FromConfig(cfg, lg)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Mount("/", handlers.Router(stores, tokens, notifier, lg))

	// Start server
	lg.Infof("🚀 Student Feedback API starting on port %s (storage: %s)", cfg.Port, stores.Source)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		lg.Fatalf("❌ Server failed: %v", err)
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
