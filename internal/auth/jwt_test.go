package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("secret", "Sabha", "Sabha")

	token, err := a.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	parsed, err := a.ValidateToken(token)
	require.NoError(t, err)

	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	a := NewJWTAuthenticator("secret", "Sabha", "Sabha")

	token, err := a.GenerateToken("ops", -time.Minute)
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenFromOtherIssuerIsRejected(t *testing.T) {
	other := NewJWTAuthenticator("secret", "Sabha", "SomeoneElse")
	token, err := other.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	a := NewJWTAuthenticator("secret", "Sabha", "Sabha")
	_, err = a.ValidateToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	a := NewJWTAuthenticator("secret", "Sabha", "Sabha")
	b := NewJWTAuthenticator("other-secret", "Sabha", "Sabha")

	token, err := b.GenerateToken("ops", time.Hour)
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.Error(t, err)
}
