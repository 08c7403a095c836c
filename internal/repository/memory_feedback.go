package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"student-feedback-backend/internal/models"
)

// MemoryFeedbackRepo is the in-process fallback feedback store. Identities
// are sequential integers rendered in decimal, starting at 1.
type MemoryFeedbackRepo struct {
	mu        sync.Mutex
	feedbacks []models.Feedback
	nextID    int
}

func NewMemoryFeedbackRepo() *MemoryFeedbackRepo {
	return &MemoryFeedbackRepo{nextID: 1}
}

func (r *MemoryFeedbackRepo) Insert(_ context.Context, feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	feedback.ID = strconv.Itoa(r.nextID)
	feedback.CreatedAt = time.Now()
	r.nextID++
	r.feedbacks = append(r.feedbacks, *feedback)
	return nil
}

// ListAll returns records in insertion order.
func (r *MemoryFeedbackRepo) ListAll(_ context.Context) ([]models.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Feedback, len(r.feedbacks))
	copy(out, r.feedbacks)
	return out, nil
}

func (r *MemoryFeedbackRepo) Delete(_ context.Context, id string) error {
	if _, err := strconv.Atoi(id); err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.feedbacks {
		if r.feedbacks[i].ID == id {
			r.feedbacks = append(r.feedbacks[:i], r.feedbacks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
