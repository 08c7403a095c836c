package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"student-feedback-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepoCreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	user := &models.User{Username: "alice", PasswordHash: "hash", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	missing, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryUserRepoDuplicateUsername(t *testing.T) {
	repo := NewMemoryUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h1"}))

	err := repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// Uniqueness is case-sensitive exact match.
	require.NoError(t, repo.Create(ctx, &models.User{Username: "Alice", PasswordHash: "h3"}))
}

func TestMemoryFeedbackRepoInsertAndList(t *testing.T) {
	repo := NewMemoryFeedbackRepo()
	ctx := context.Background()

	first := &models.Feedback{StudentName: "Alice", Comment: "Excellent!", Rating: 5}
	second := &models.Feedback{StudentName: "Bob", Comment: "Good course", Rating: 4}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	// Sequential decimal identities starting at 1.
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Insertion order.
	assert.Equal(t, "Alice", all[0].StudentName)
	assert.Equal(t, "Bob", all[1].StudentName)
}

func TestMemoryFeedbackRepoDelete(t *testing.T) {
	repo := NewMemoryFeedbackRepo()
	ctx := context.Background()

	f := &models.Feedback{StudentName: "Alice", Comment: "Excellent!"}
	require.NoError(t, repo.Insert(ctx, f))

	require.NoError(t, repo.Delete(ctx, f.ID))

	// Second delete of the same identity: gone, not malformed.
	assert.ErrorIs(t, repo.Delete(ctx, f.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "99999"), ErrNotFound)

	// Non-integer identity is a format error under the fallback mode.
	assert.ErrorIs(t, repo.Delete(ctx, "64f000000000000000000000"), ErrInvalidID)
}

func TestMemoryFeedbackRepoConcurrentInserts(t *testing.T) {
	repo := NewMemoryFeedbackRepo()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			f := &models.Feedback{
				StudentName: fmt.Sprintf("student-%d", i),
				Comment:     "concurrent",
			}
			assert.NoError(t, repo.Insert(ctx, f))
		}(i)
	}
	wg.Wait()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)

	// The counter must not hand out the same identity twice.
	seen := make(map[string]bool, workers)
	for _, f := range all {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}
