package handlers

import (
	"net/http"
	"time"
)

// --- GET / ---

func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "🎓 Student Feedback Management API",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"GET /":                 "API information",
			"GET /health":           "Health check",
			"POST /register":        "Register a new user",
			"POST /login":           "Log in and receive a bearer token",
			"GET /feedback":         "Get all feedback (auth required)",
			"POST /feedback":        "Add new feedback (auth required)",
			"DELETE /feedback/{id}": "Delete feedback by ID (auth required)",
		},
	})
}

// --- GET /health ---

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
