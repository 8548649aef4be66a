package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	token, err := manager.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := NewTokenManager("secret", time.Hour).GenerateToken(1)
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	manager := &TokenManager{key: []byte("secret"), ttl: -time.Hour}

	token, err := manager.GenerateToken(1)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewTokenManagerDefaultTTL(t *testing.T) {
	manager := NewTokenManager("secret", 0)
	assert.Equal(t, 24*time.Hour, manager.ttl)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("nofate")
	require.NoError(t, err)
	assert.NotEqual(t, "nofate", hash)

	assert.True(t, CheckPasswordHash("nofate", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
