package handlers

import (
	"student-feedback-backend/internal/auth"
	customMiddleware "student-feedback-backend/internal/middleware"
	"student-feedback-backend/internal/notify"
	"student-feedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Router assembles the API surface: public system/auth routes and the
// token-gated feedback routes.
func Router(stores repository.Stores, tokens *auth.TokenService, notifier notify.Notifier, lg *zap.SugaredLogger) chi.Router {
	authHandler := NewAuthHandler(stores.Users, tokens, lg)
	feedbackHandler := NewFeedbackHandler(stores, notifier, lg)

	r := chi.NewRouter()

	// Public routes (no auth required)
	r.Get("/", Home)
	r.Get("/health", Health)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(tokens))

		r.Get("/feedback", feedbackHandler.List)
		r.Post("/feedback", feedbackHandler.Add)
		r.Delete("/feedback/{id}", feedbackHandler.Delete)
	})

	return r
}
