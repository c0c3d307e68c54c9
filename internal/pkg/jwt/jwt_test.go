package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sid-1", "7", "a@b.com", "admin", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "7", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("sid-1", "7", "a@b.com", "admin", "secret", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("sid-1", "7", "a@b.com", "admin", "secret", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
