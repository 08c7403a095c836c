package repository

import (
	"context"
	"sync"
	"time"

	"student-feedback-backend/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepo is the in-process fallback credential store. All access
// goes through the mutex; concurrent registrations must not race the
// uniqueness check.
type MemoryUserRepo struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{}
}

func (r *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			return ErrDuplicateUsername
		}
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}
