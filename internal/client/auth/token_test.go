package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestExpiresAt_ReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, jwt.RegisteredClaims{Subject: "1", ExpiresAt: jwt.NewNumericDate(exp)})

	got, ok := ExpiresAt(tok)
	require.True(t, ok)
	require.True(t, exp.Equal(got))
}

func TestExpiresAt_NoExpClaim(t *testing.T) {
	tok := signed(t, jwt.RegisteredClaims{Subject: "1"})

	_, ok := ExpiresAt(tok)
	require.False(t, ok)
}

func TestExpiresAt_OpaqueOrEmpty(t *testing.T) {
	_, ok := ExpiresAt("")
	require.False(t, ok)

	_, ok = ExpiresAt("jwt-token-v1-1-1700000000")
	require.False(t, ok)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	future := signed(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))})

	require.True(t, Expired(past, now))
	require.False(t, Expired(future, now))
	require.False(t, Expired("opaque", now))
}
