package repository

import (
	"context"
	"errors"

	"student-feedback-backend/internal/models"
)

var (
	// ErrDuplicateUsername is returned when a username already exists
	// under the active storage mode (case-sensitive exact match).
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrNotFound is returned when a well-formed identity matches no record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an identity does not parse under the
	// active mode's format (ObjectID hex vs. integer).
	ErrInvalidID = errors.New("invalid id format")
)

type UserRepository interface {
	// Create persists the user and assigns its identity. The password
	// hash must already be computed; plaintext never reaches a repository.
	Create(ctx context.Context, user *models.User) error
	// FindByUsername returns nil without error when no user matches.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type FeedbackRepository interface {
	// Insert persists the feedback and assigns its identity per the
	// active mode's rule.
	Insert(ctx context.Context, feedback *models.Feedback) error
	// ListAll returns every record in store-defined order: insertion
	// order in memory mode, the engine's natural order under MongoDB.
	ListAll(ctx context.Context) ([]models.Feedback, error)
	Delete(ctx context.Context, id string) error
}
