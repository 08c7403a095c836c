package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"student-feedback-backend/internal/middleware"
	"student-feedback-backend/internal/models"
	"student-feedback-backend/internal/notify"
	"student-feedback-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	stores   repository.Stores
	notifier notify.Notifier
	lg       *zap.SugaredLogger
}

func NewFeedbackHandler(stores repository.Stores, notifier notify.Notifier, lg *zap.SugaredLogger) *FeedbackHandler {
	return &FeedbackHandler{
		stores:   stores,
		notifier: notifier,
		lg:       lg,
	}
}

type AddFeedbackRequest struct {
	StudentName string `json:"student_name"`
	Comment     string `json:"comment"`
	Rating      int    `json:"rating"`
}

// --- GET /feedback ---

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.stores.Feedbacks.ListAll(r.Context())
	if err != nil {
		h.lg.Errorf("list feedback error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(feedbacks),
		"data":    feedbacks,
		"source":  h.stores.Source,
	})
}

// --- POST /feedback ---

func (h *FeedbackHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "no data provided")
		return
	}

	if req.StudentName == "" {
		writeError(w, http.StatusBadRequest, "student_name is required")
		return
	}
	if req.Comment == "" {
		writeError(w, http.StatusBadRequest, "comment is required")
		return
	}

	feedback := &models.Feedback{
		StudentName: req.StudentName,
		Comment:     req.Comment,
		Rating:      req.Rating,
		CreatedBy:   middleware.GetUserID(r.Context()),
	}
	if err := h.stores.Feedbacks.Insert(r.Context(), feedback); err != nil {
		h.lg.Errorf("insert feedback error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to add feedback")
		return
	}

	// Notify in a background goroutine, off the request path.
	message := formatNotification(feedback)
	go func() {
		if err := h.notifier.Publish(context.Background(), message); err != nil {
			h.lg.Errorf("publish notification error: %v", err)
		}
	}()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Feedback added successfully",
		"data":    feedback,
	})
}

// --- DELETE /feedback/{id} ---

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.stores.Feedbacks.Delete(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid ID format")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("feedback with ID %s not found", id))
	case err != nil:
		h.lg.Errorf("delete feedback error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": fmt.Sprintf("Feedback with ID %s deleted successfully", id),
		})
	}
}

func formatNotification(f *models.Feedback) string {
	stars := ""
	for i := 0; i < f.Rating; i++ {
		stars += "⭐"
	}
	return fmt.Sprintf("📝 New feedback from %s\nRating: %s\nComment: %s", f.StudentName, stars, f.Comment)
}
