package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewManager("test-secret")
	require.NoError(t, err)

	token, err := manager.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyToken(t *testing.T) {
	t.Run("empty secret is rejected at construction", func(t *testing.T) {
		_, err := NewManager("")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		manager, err := NewManager("test-secret")
		require.NoError(t, err)

		_, err = manager.VerifyToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		issuer, err := NewManager("one-secret")
		require.NoError(t, err)
		verifier, err := NewManager("another-secret")
		require.NoError(t, err)

		token, err := issuer.GenerateToken(42)
		require.NoError(t, err)

		_, err = verifier.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		manager := &Manager{secret: []byte("test-secret"), ttl: -time.Minute}

		token, err := manager.GenerateToken(42)
		require.NoError(t, err)

		_, err = manager.VerifyToken(token)
		assert.Error(t, err)
	})
}
