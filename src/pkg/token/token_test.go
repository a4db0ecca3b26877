package token_test

import (
	"testing"
	"time"

	"invest-service/src/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	signed, err := token.Generate("secret", "user-1", "asha", false, time.Hour)
	require.NoError(t, err)

	claim, err := token.Parse("secret", signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claim.UserID)
	assert.Equal(t, "asha", claim.Username)
	assert.False(t, claim.IsAdmin)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := token.Generate("secret", "user-1", "asha", false, time.Hour)
	require.NoError(t, err)

	_, err = token.Parse("other-secret", signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseExpired(t *testing.T) {
	signed, err := token.Generate("secret", "user-1", "asha", true, -time.Minute)
	require.NoError(t, err)

	_, err = token.Parse("secret", signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := token.Parse("secret", "not.a.token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
