package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	_, err := CreateSession(db, alice, "token-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	user, err := UserForToken(db, "token-1")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
}

func TestUserForToken_Expired(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	_, err := CreateSession(db, alice, "token-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = UserForToken(db, "token-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteSession(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	_, err := CreateSession(db, alice, "token-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, DeleteSession(db, "token-1"))

	_, err = UserForToken(db, "token-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPurgeExpiredSessions(t *testing.T) {
	db := setupTestDB(t)
	alice := registerTestUser(t, db, "alice", "a@x.com")

	_, err := CreateSession(db, alice, "live", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = CreateSession(db, alice, "stale", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	purged, err := PurgeExpiredSessions(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	_, err = UserForToken(db, "live")
	assert.NoError(t, err)
}
