package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSuccess(t *testing.T) {
	r, _ := newTestRouter(t, 24*time.Hour)

	status, body := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "secret123",
		"email":    "alice@example.com",
	}, "")

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotEmpty(t, user["id"])
	// The hash must never cross the API boundary.
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t, 24*time.Hour)

	status, body := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"username": "al",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "username")

	status, body = doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, _ := newTestRouter(t, 24*time.Hour)

	status, _ := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "different456",
	}, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, false, body["success"])
}

func TestLoginRoundtrip(t *testing.T) {
	r, tokens := newTestRouter(t, 24*time.Hour)

	token := registerAndLogin(t, r, "alice", "secret123")

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.UserID)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	r, _ := newTestRouter(t, 24*time.Hour)

	status, _ := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	status, wrongPassword := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, unknownUser := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "nobody",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// Wrong password and nonexistent username must return the same message.
	assert.Equal(t, wrongPassword["error"], unknownUser["error"])
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newTestRouter(t, 24*time.Hour)

	status, body := doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"username": "alice",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}
