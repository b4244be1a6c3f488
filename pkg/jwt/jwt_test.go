package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestValidateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, "u-1", "clerk@example.com", "Clerk", []string{"product:view"}, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Clerk", claims.Name)
	assert.Equal(t, []string{"product:view"}, claims.Privileges)
}

func TestValidateToken_Rejects(t *testing.T) {
	expired, err := GenerateToken(secret, "u-1", "", "", nil, -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken([]byte("other"), "u-1", "", "", nil, time.Hour)
	require.NoError(t, err)
	anonymous, err := GenerateToken(secret, "", "", "", nil, time.Hour)
	require.NoError(t, err)

	tests := map[string]struct {
		token string
		want  error
	}{
		"empty":        {token: "", want: ErrMissingToken},
		"garbage":      {token: "not-a-token", want: ErrInvalidToken},
		"expired":      {token: expired, want: ErrInvalidToken},
		"wrong secret": {token: foreign, want: ErrInvalidToken},
		"no subject":   {token: anonymous, want: ErrInvalidToken},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(secret, tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
