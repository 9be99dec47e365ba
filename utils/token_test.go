package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("secret", "user-1", time.Now())
	require.NoError(t, err)

	id, err := ParseToken("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestParseTokenRejects(t *testing.T) {
	good, err := GenerateToken("secret", "user-1", time.Now())
	require.NoError(t, err)

	expired, err := GenerateToken("secret", "user-1", time.Now().Add(-2*TokenTTL))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]struct{ secret, token string }{
		"wrong secret": {"other", good},
		"expired":      {"secret", expired},
		"garbage":      {"secret", "not-a-token"},
		"no user id":   {"secret", noUser},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateTokenNeedsSecret(t *testing.T) {
	_, err := GenerateToken("", "user-1", time.Now())
	assert.Error(t, err)
}
