package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, 24*time.Hour)

	token, ttl, err := m.Issue(7, "admin", false)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionRememberExtendsTTL(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, 24*time.Hour)

	_, short, err := m.Issue(1, "admin", false)
	require.NoError(t, err)
	_, long, err := m.Issue(1, "admin", true)
	require.NoError(t, err)
	assert.Greater(t, long, short)
}

func TestSessionRejectsForgedAndExpired(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewSessionManager("other-secret", time.Hour, 24*time.Hour)
		token, _, err := other.Issue(1, "admin", false)
		require.NoError(t, err)
		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewSessionManager("test-secret", -time.Hour, 24*time.Hour)
		token, _, err := expired.Issue(1, "admin", false)
		require.NoError(t, err)
		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}
