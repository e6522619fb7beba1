package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateJWT("42", "admin")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func TestJWT_RejectsForeignSignature(t *testing.T) {
	InitJWT("secret-a", time.Hour)
	token, err := GenerateJWT("1", "customer")
	require.NoError(t, err)

	InitJWT("secret-b", time.Hour)
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	InitJWT("test-secret", time.Nanosecond)
	token, err := GenerateJWT("1", "customer")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPassword("s3cret!", string(hash)))
	assert.False(t, CheckPassword("wrong", string(hash)))
}
