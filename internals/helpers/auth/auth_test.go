package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPasswordHash(hash, "secret"))
	assert.False(t, CheckPasswordHash(hash, "Secret"))
}

func TestRandomPassword(t *testing.T) {
	for _, n := range []int{1, 5, 8} {
		p, err := RandomPassword(n)
		require.NoError(t, err)
		assert.Len(t, p, n)
		assert.Regexp(t, `^[0-9a-f]+$`, p)
	}
}

func TestSignAndParseToken(t *testing.T) {
	tok, err := SignToken(jwt.MapClaims{"id": 7, "role": "admin"}, "k1", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "k1")
	require.NoError(t, err)
	id, ok := ClaimUint(claims, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "admin", ClaimString(claims, "role"))

	_, err = ParseToken(tok, "k2")
	assert.Error(t, err)

	_, err = SignToken(jwt.MapClaims{}, "", time.Minute)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestParseExpiredToken(t *testing.T) {
	tok, err := SignToken(jwt.MapClaims{"id": 1}, "k1", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(tok, "k1")
	assert.Error(t, err)
}

func TestClaimUint(t *testing.T) {
	_, ok := ClaimUint(jwt.MapClaims{"id": float64(0)}, "id")
	assert.False(t, ok)
	_, ok = ClaimUint(jwt.MapClaims{"id": "3"}, "id")
	assert.False(t, ok)
	_, ok = ClaimUint(jwt.MapClaims{}, "id")
	assert.False(t, ok)
}
